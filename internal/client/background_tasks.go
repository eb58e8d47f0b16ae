package client

import (
	"context"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// BackgroundTasksClient implements xminds.BackgroundTaskOperations.
type BackgroundTasksClient struct {
	httpClient *http.Client
}

// NewBackgroundTasksClient creates a new background tasks client.
func NewBackgroundTasksClient(httpClient *http.Client) *BackgroundTasksClient {
	return &BackgroundTasksClient{
		httpClient: httpClient,
	}
}

// TriggerBackgroundTask starts the named task.
func (c *BackgroundTasksClient) TriggerBackgroundTask(ctx context.Context, taskName string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpTriggerBackgroundTask, map[string]string{"task_name": taskName}, nil, nil)
}

// ListRecentBackgroundTasks lists recent runs of the named task.
func (c *BackgroundTasksClient) ListRecentBackgroundTasks(ctx context.Context, taskName string) (*xminds.Value, error) {
	return execute(ctx, c.httpClient, xminds.OpListRecentBackgroundTasks, map[string]string{"task_name": taskName}, nil, nil)
}
