// Package spa knows the client-side route table of the topic model browser
// and serves its built assets in history mode: deep links into the browser
// get index.html, real assets are served as files.
package spa
