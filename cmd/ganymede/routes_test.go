package main

import (
	"bytes"
	"strings"
	"testing"

	"mercator-hq/ganymede/pkg/app"
)

func TestRenderRoutesSortedByPath(t *testing.T) {
	routes := []app.Route{
		{Path: "/users", Handler: "ListUsers", Methods: []string{"GET"}},
		{Path: "/items", Handler: "ListItems", Methods: []string{"GET", "POST"}},
		{Path: "/ws/events", Kind: "websocket", Handler: "EventStream"},
	}

	var buf bytes.Buffer
	renderRoutes(&buf, routes)
	out := buf.String()

	itemsIdx := strings.Index(out, "/items")
	usersIdx := strings.Index(out, "/users")
	wsIdx := strings.Index(out, "/ws/events")
	if itemsIdx == -1 || usersIdx == -1 || wsIdx == -1 {
		t.Fatalf("output missing routes:\n%s", out)
	}
	if !(itemsIdx < usersIdx && usersIdx < wsIdx) {
		t.Errorf("routes should be sorted by path:\n%s", out)
	}

	if !strings.Contains(out, "/items (HTTP)") {
		t.Errorf("empty kind should render as HTTP:\n%s", out)
	}
	if !strings.Contains(out, "/ws/events (WEBSOCKET)") {
		t.Errorf("websocket kind should be rendered:\n%s", out)
	}
	if !strings.Contains(out, "ListItems GET, POST") {
		t.Errorf("handler and methods should be rendered:\n%s", out)
	}
}

func TestRenderRoutesDoesNotMutateInput(t *testing.T) {
	routes := []app.Route{
		{Path: "/b"},
		{Path: "/a"},
	}

	var buf bytes.Buffer
	renderRoutes(&buf, routes)

	if routes[0].Path != "/b" {
		t.Error("renderRoutes must not reorder the application's route table")
	}
}
