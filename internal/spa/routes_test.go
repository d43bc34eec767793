package spa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Match(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantOK     bool
		wantRoute  string
		wantParams map[string]string
	}{
		{name: "root", path: "/", wantOK: true, wantRoute: RouteHome, wantParams: map[string]string{}},
		{name: "empty", path: "", wantOK: true, wantRoute: RouteHome, wantParams: map[string]string{}},
		{name: "topic", path: "/topic/12", wantOK: true, wantRoute: RouteTopic, wantParams: map[string]string{"topic": "12"}},
		{name: "trailing slash", path: "/topic/12/", wantOK: true, wantRoute: RouteTopic, wantParams: map[string]string{"topic": "12"}},
		{name: "document", path: "/document/4521", wantOK: true, wantRoute: RouteDocument, wantParams: map[string]string{"doc": "4521"}},
		{name: "escaped word", path: "/word/%C3%A9t%C3%A9", wantOK: true, wantRoute: RouteWord, wantParams: map[string]string{"word": "été"}},
		{name: "escaped slash stays in one param", path: "/word/a%2Fb", wantOK: true, wantRoute: RouteWord, wantParams: map[string]string{"word": "a/b"}},
		{name: "field view", path: "/view/author", wantOK: true, wantRoute: RouteFieldView, wantParams: map[string]string{"fieldName": "author"}},
		{
			name:       "field distribution",
			path:       "/metadata/author/Voltaire%2C%20Fran%C3%A7ois",
			wantOK:     true,
			wantRoute:  RouteFieldDistribution,
			wantParams: map[string]string{"fieldName": "author", "fieldValue": "Voltaire, François"},
		},
		{name: "missing param", path: "/topic", wantOK: false},
		{name: "too many segments", path: "/topic/1/2", wantOK: false},
		{name: "unknown prefix", path: "/topics/1", wantOK: false},
		{name: "asset", path: "/assets/index-1234.js", wantOK: false},
		{name: "bad escape", path: "/word/%zz", wantOK: false},
	}

	r := NewRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := r.Match(tt.path)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantRoute, m.Name)
			assert.Equal(t, tt.wantParams, m.Params)
		})
	}
}

func TestRouter_Resolve(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		name   string
		route  string
		params map[string]string
		want   string
	}{
		{name: "home", route: RouteHome, want: "/"},
		{name: "topic", route: RouteTopic, params: map[string]string{"topic": "3"}, want: "/topic/3"},
		{name: "escapes values", route: RouteWord, params: map[string]string{"word": "a b/c"}, want: "/word/a%20b%2Fc"},
		{
			name:   "two params",
			route:  RouteFieldDistribution,
			params: map[string]string{"fieldName": "year", "fieldValue": "1750"},
			want:   "/metadata/year/1750",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.route, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// resolving then matching gives the route back
			m, ok := r.Match(got)
			require.True(t, ok)
			assert.Equal(t, tt.route, m.Name)
		})
	}
}

func TestRouter_Resolve_Errors(t *testing.T) {
	r := NewRouter()

	_, err := r.Resolve("search", nil)
	assert.ErrorIs(t, err, ErrUnknownRoute)

	_, err = r.Resolve(RouteFieldDistribution, map[string]string{"fieldName": "author"})
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestRouter_URL(t *testing.T) {
	r := NewRouter()

	got, err := r.URL("philo_db", RouteTopic, map[string]string{"topic": "0"})
	require.NoError(t, err)
	assert.Equal(t, "/topologic/philo_db/topic/0", got)

	got, err = r.URL("philo_db", RouteHome, nil)
	require.NoError(t, err)
	assert.Equal(t, "/topologic/philo_db/", got)
}

func TestNewRouter_CustomRoutes(t *testing.T) {
	r := NewRouter(Route{Name: "about", Pattern: "/about"})

	m, ok := r.Match("/about/")
	require.True(t, ok)
	assert.Equal(t, "about", m.Name)

	_, ok = r.Match("/")
	assert.False(t, ok)
}
