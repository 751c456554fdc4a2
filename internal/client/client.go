// Package client es un cliente tipado de la API HTTP de PetPal.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"petpal/internal/platform/httpclient"
)

type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Completed   bool       `json:"completed"`
	IsDaily     bool       `json:"is_daily"`
}

type TaskCompletion struct {
	ID     int64     `json:"id"`
	TaskID int64     `json:"task_id"`
	Date   time.Time `json:"date"`
}

type VetVisit struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type NewTask struct {
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
	Completed   bool       `json:"completed"`
	IsDaily     bool       `json:"is_daily"`
}

type NewVetVisit struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, fmt.Errorf("client: base url is required")
	}
	return &Client{http: hc}, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.http.DoJSON(ctx, http.MethodGet, "/tasks/", nil, nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, in NewTask) (Task, error) {
	var out Task
	err := c.http.DoJSON(ctx, http.MethodPost, "/tasks/", nil, in, &out)
	return out, err
}

func (c *Client) SetCompleted(ctx context.Context, taskID int64, completed bool) (Task, error) {
	var out Task
	q := url.Values{"completed": []string{strconv.FormatBool(completed)}}
	err := c.http.DoJSON(ctx, http.MethodPut, taskPath(taskID, ""), q, nil, &out)
	return out, err
}

func (c *Client) CompleteTask(ctx context.Context, taskID int64) (TaskCompletion, error) {
	var out TaskCompletion
	err := c.http.DoJSON(ctx, http.MethodPost, taskPath(taskID, "/complete"), nil, nil, &out)
	return out, err
}

func (c *Client) Completions(ctx context.Context, taskID int64) ([]TaskCompletion, error) {
	var out []TaskCompletion
	err := c.http.DoJSON(ctx, http.MethodGet, taskPath(taskID, "/completions"), nil, nil, &out)
	return out, err
}

func (c *Client) ListVetVisits(ctx context.Context) ([]VetVisit, error) {
	var out []VetVisit
	err := c.http.DoJSON(ctx, http.MethodGet, "/vet_visits/", nil, nil, &out)
	return out, err
}

func (c *Client) CreateVetVisit(ctx context.Context, in NewVetVisit) (VetVisit, error) {
	var out VetVisit
	err := c.http.DoJSON(ctx, http.MethodPost, "/vet_visits/", nil, in, &out)
	return out, err
}

func taskPath(id int64, suffix string) string {
	return "/tasks/" + strconv.FormatInt(id, 10) + suffix
}
