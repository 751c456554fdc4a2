package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"petpal/internal/adapters/storage/orm"
	"petpal/internal/client"
	"petpal/internal/platform/logger"
	"petpal/internal/router"
)

func newTestAPI(t *testing.T) string {
	t.Helper()
	st, err := orm.OpenInMemory(context.Background(), logger.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: st, Logger: logger.Discard()}))
	t.Cleanup(func() {
		ts.Close()
		_ = st.Close()
	})
	return ts.URL
}

func run(t *testing.T, server string, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--server", server}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("petpalctl %v: %v", args, err)
	}
	return out.Bytes()
}

func TestPetpalctl_TasksFlow(t *testing.T) {
	server := newTestAPI(t)

	var created client.Task
	if err := json.Unmarshal(run(t, server, "tasks", "add", "Feed cat", "--daily"), &created); err != nil {
		t.Fatalf("decode add output: %v", err)
	}
	if created.ID == 0 || !created.IsDaily || created.Completed {
		t.Fatalf("unexpected task %#v", created)
	}

	var updated client.Task
	if err := json.Unmarshal(run(t, server, "tasks", "set", "1", "yes"), &updated); err != nil {
		t.Fatalf("decode set output: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected completed=true")
	}

	run(t, server, "tasks", "complete", "1")
	run(t, server, "tasks", "complete", "1")

	var completions []client.TaskCompletion
	if err := json.Unmarshal(run(t, server, "tasks", "completions", "1"), &completions); err != nil {
		t.Fatalf("decode completions: %v", err)
	}
	if len(completions) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(completions))
	}

	var list []client.Task
	if err := json.Unmarshal(run(t, server, "tasks", "list"), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 task, got %d", len(list))
	}
}

func TestPetpalctl_Visits(t *testing.T) {
	server := newTestAPI(t)

	run(t, server, "visits", "add", "Annual checkup", "--date", "2025-06-01")

	var list []client.VetVisit
	if err := json.Unmarshal(run(t, server, "visits", "list"), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Description != "Annual checkup" {
		t.Fatalf("unexpected visits %#v", list)
	}
}

func TestPetpalctl_Errors(t *testing.T) {
	server := newTestAPI(t)

	tests := [][]string{
		{"tasks", "set", "abc", "true"},
		{"tasks", "set", "1", "maybe"},
		{"tasks", "complete", "99999"},
		{"tasks", "add"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--server", server}, args...))
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
