package jobs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderReportJob_Run(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Load(t.Context(), memory.Seed{
		Orders: []memory.SeedOrder{
			{ID: "o1", DeliverTo: "a", MobileNumber: "b", Dishes: []memory.SeedLineItem{{DishID: "d", Quantity: 1}}},
			{ID: "o2", DeliverTo: "a", MobileNumber: "b", Status: "delivered", Dishes: []memory.SeedLineItem{{DishID: "d", Quantity: 1}}},
			{ID: "o3", DeliverTo: "a", MobileNumber: "b", Status: "delivered", Dishes: []memory.SeedLineItem{{DishID: "d", Quantity: 2}}},
		},
	}))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	job := jobs.NewOrderReportJob(queries.NewListOrdersQueryHandler(store.Orders()), "@every 1h", logger)

	job.Run(t.Context())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Order report", entry["msg"])
	assert.Equal(t, "order_report_job", entry["component"])
	assert.InDelta(t, 3, entry["total"], 0)
	assert.InDelta(t, 1, entry["pending"], 0)
	assert.InDelta(t, 2, entry["delivered"], 0)
	assert.InDelta(t, 0, entry["preparing"], 0)
}

func TestOrderReportJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewOrderReportJob(
		queries.NewListOrdersQueryHandler(memory.NewStore().Orders()),
		"not a schedule",
		slog.New(slog.DiscardHandler),
	)

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	handler := queries.NewListOrdersQueryHandler(memory.NewStore().Orders())
	logger := slog.New(slog.DiscardHandler)

	t.Run("empty schedule disables the report", func(t *testing.T) {
		jm := jobs.NewJobManager(handler, "", logger)

		assert.Equal(t, 0, jm.Len())
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("starts and stops", func(t *testing.T) {
		jm := jobs.NewJobManager(handler, "@every 1h", logger)

		assert.Equal(t, 1, jm.Len())
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("bad schedule fails to start", func(t *testing.T) {
		jm := jobs.NewJobManager(handler, "every so often", logger)

		require.Error(t, jm.StartAll())
	})
}
