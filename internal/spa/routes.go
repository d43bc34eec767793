// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spa

import (
	"fmt"
	"net/url"
	"strings"
)

// Route names of the browser.
const (
	RouteHome              = "home"
	RouteTopic             = "topic"
	RouteDocument          = "document"
	RouteWord              = "word"
	RouteFieldView         = "fieldView"
	RouteFieldDistribution = "fieldDistribution"
)

// BasePrefix is the path prefix every model browser is mounted under.
const BasePrefix = "/topologic/"

// Route is a named path pattern. Segments starting with ':' capture a
// parameter.
type Route struct {
	Name    string
	Pattern string

	segments []string
}

// DefaultRoutes is the route table of the browser.
var DefaultRoutes = []Route{
	{Name: RouteHome, Pattern: "/"},
	{Name: RouteTopic, Pattern: "/topic/:topic"},
	{Name: RouteDocument, Pattern: "/document/:doc"},
	{Name: RouteWord, Pattern: "/word/:word"},
	{Name: RouteFieldView, Pattern: "/view/:fieldName"},
	{Name: RouteFieldDistribution, Pattern: "/metadata/:fieldName/:fieldValue"},
}

// Match is the result of matching a path against the route table.
type Match struct {
	Name   string
	Params map[string]string
}

// Router matches and builds browser paths.
type Router struct {
	routes []Route
	byName map[string]Route
}

// NewRouter builds a Router over routes, or over [DefaultRoutes] when none
// are given.
func NewRouter(routes ...Route) *Router {
	if len(routes) == 0 {
		routes = DefaultRoutes
	}

	r := &Router{
		routes: make([]Route, 0, len(routes)),
		byName: make(map[string]Route, len(routes)),
	}
	for _, route := range routes {
		route.segments = splitPath(route.Pattern)
		r.routes = append(r.routes, route)
		r.byName[route.Name] = route
	}

	return r
}

// Base returns the mount path of the browser of table, with a trailing
// slash.
func Base(table string) string {
	return BasePrefix + url.PathEscape(table) + "/"
}

// Match finds the first route matching the escaped path. A trailing slash
// is ignored and captured parameters are unescaped.
func (r *Router) Match(escapedPath string) (Match, bool) {
	segments := splitPath(escapedPath)

	for _, route := range r.routes {
		if params, ok := matchSegments(route.segments, segments); ok {
			return Match{Name: route.Name, Params: params}, true
		}
	}

	return Match{}, false
}

func matchSegments(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			value, err := url.PathUnescape(segments[i])
			if err != nil || value == "" {
				return nil, false
			}
			params[name] = value
			continue
		}

		if p != segments[i] {
			return nil, false
		}
	}

	return params, true
}

// Resolve builds the path of the named route relative to the browser base.
func (r *Router) Resolve(name string, params map[string]string) (string, error) {
	route, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	var b strings.Builder
	for _, segment := range route.segments {
		b.WriteByte('/')

		param, ok := strings.CutPrefix(segment, ":")
		if !ok {
			b.WriteString(segment)
			continue
		}

		value := params[param]
		if value == "" {
			return "", fmt.Errorf("%w: %s needs %q", ErrMissingParam, name, param)
		}
		b.WriteString(url.PathEscape(value))
	}

	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

// URL is [Router.Resolve] prefixed with the base of table.
func (r *Router) URL(table, name string, params map[string]string) (string, error) {
	p, err := r.Resolve(name, params)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(Base(table), "/") + p, nil
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
