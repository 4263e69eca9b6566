package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/motodash/internal/core/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, "migrations"))
	return db
}

func stamp(offset time.Duration) domain.Timestamp {
	return domain.NewTimestamp(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Add(offset))
}

func tourFields(id, name string, created domain.Timestamp) domain.Fields {
	return domain.Fields{
		"id": id, "bike_id": "b1", "name": name, "start_at": "", "end_at": "",
		"distance": float64(120), "gpx": "", "notes": "",
		"created_at": created, "updated_at": created,
	}
}

func fuelFields(id, date string, created domain.Timestamp) domain.Fields {
	return domain.Fields{
		"id": id, "bike_id": "b1", "date": date, "liters": 10.5, "cost": 21.0,
		"distance": float64(200), "notes": "", "created_at": created, "updated_at": created,
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, "migrations"))

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestListToursNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.Insert(ctx, tourFields("t1", "first", stamp(0))))
	require.NoError(t, repo.Insert(ctx, tourFields("t2", "second", stamp(time.Second))))
	require.NoError(t, repo.Insert(ctx, tourFields("t3", "third", stamp(2*time.Second))))

	tours, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 3)
	assert.Equal(t, "t3", tours[0].ID)
	assert.Equal(t, "t2", tours[1].ID)
	assert.Equal(t, "t1", tours[2].ID)
	assert.Equal(t, float64(120), tours[0].Distance)
}

func TestListBreaksTimestampTiesByInsertion(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	same := stamp(0)
	require.NoError(t, repo.Insert(ctx, tourFields("a", "first", same)))
	require.NoError(t, repo.Insert(ctx, tourFields("b", "second", same)))

	tours, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, "b", tours[0].ID)
	assert.Equal(t, "a", tours[1].ID)
}

func TestListFuelByDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.FuelEntry](db, domain.FuelSchema)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, fuelFields("f1", "2024-03-01", stamp(0))))
	require.NoError(t, repo.Insert(ctx, fuelFields("f2", "2024-01-15", stamp(time.Second))))
	require.NoError(t, repo.Insert(ctx, fuelFields("f3", "2024-03-01", stamp(2*time.Second))))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"f3", "f1", "f2"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestGetRoundTripsValues(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Bike](db, domain.BikeSchema)
	ctx := context.Background()

	created := stamp(0)
	require.NoError(t, repo.Insert(ctx, domain.Fields{
		"id": "b1", "name": "Daily", "manufacturer": "Honda", "model": "CB500F",
		"year": int64(2020), "mileage": int64(1200), "first_registration": "2020-04-01",
		"purchase_price": 5999.5, "image": "", "notes": "",
		"created_at": created, "updated_at": created,
	}))

	bike, err := repo.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Daily", bike.Name)
	assert.Equal(t, "Honda", bike.Manufacturer)
	assert.Equal(t, 2020, bike.Year)
	assert.Equal(t, 1200, bike.Mileage)
	assert.Equal(t, 5999.5, bike.PurchasePrice)
	assert.True(t, created.Equal(bike.CreatedAt.Time))

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInsertDuplicateID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, tourFields("t1", "first", stamp(0))))
	err := repo.Insert(ctx, tourFields("t1", "again", stamp(time.Second)))
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestInsertRejectsUnknownColumn(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)

	fields := tourFields("t1", "first", stamp(0))
	fields["end"] = "x"

	assert.Error(t, repo.Insert(context.Background(), fields))
}

func TestPatchOnlyTouchesGivenColumns(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, tourFields("t1", "first", stamp(0))))

	require.NoError(t, repo.Patch(ctx, "t1", domain.Fields{
		"notes":      "rain all day",
		"updated_at": stamp(time.Minute),
	}))

	tour, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "rain all day", tour.Notes)
	assert.Equal(t, "first", tour.Name)
	assert.Equal(t, float64(120), tour.Distance)
	assert.True(t, tour.UpdatedAt.After(tour.CreatedAt.Time))
}

func TestPatchMissingRecord(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	err := repo.Patch(ctx, "missing", domain.Fields{"notes": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tours, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tours)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, tourFields("t1", "first", stamp(0))))

	require.NoError(t, repo.Delete(ctx, "t1"))
	require.NoError(t, repo.Delete(ctx, "t1"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	_, err := repo.Get(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletingBikeLeavesDependents(t *testing.T) {
	db := openTestDB(t)
	bikes := NewRepository[domain.Bike](db, domain.BikeSchema)
	fuel := NewRepository[domain.FuelEntry](db, domain.FuelSchema)
	maintenance := NewRepository[domain.MaintenanceEntry](db, domain.MaintenanceSchema)
	parts := NewRepository[domain.Part](db, domain.PartSchema)
	tours := NewRepository[domain.Tour](db, domain.TourSchema)
	ctx := context.Background()

	created := stamp(0)
	require.NoError(t, bikes.Insert(ctx, domain.Fields{
		"id": "b1", "name": "Daily", "year": int64(2020), "mileage": int64(0),
		"created_at": created, "updated_at": created,
	}))
	require.NoError(t, fuel.Insert(ctx, fuelFields("f1", "2024-03-01", created)))
	require.NoError(t, maintenance.Insert(ctx, domain.Fields{
		"id": "m1", "bike_id": "b1", "date": "2024-03-02", "type": "oil change",
		"mileage": int64(8000), "cost": 45.0, "created_at": created, "updated_at": created,
	}))
	require.NoError(t, parts.Insert(ctx, domain.Fields{
		"id": "p1", "bike_id": "b1", "name": "Chain", "price": 89.9,
		"created_at": created, "updated_at": created,
	}))
	require.NoError(t, tours.Insert(ctx, tourFields("t1", "Alps", created)))

	require.NoError(t, bikes.Delete(ctx, "b1"))

	fuelEntries, err := fuel.List(ctx)
	require.NoError(t, err)
	require.Len(t, fuelEntries, 1)
	assert.Equal(t, "b1", fuelEntries[0].BikeID)

	maintenanceEntries, err := maintenance.List(ctx)
	require.NoError(t, err)
	require.Len(t, maintenanceEntries, 1)
	assert.Equal(t, "b1", maintenanceEntries[0].BikeID)

	partList, err := parts.List(ctx)
	require.NoError(t, err)
	require.Len(t, partList, 1)
	assert.Equal(t, "b1", partList[0].BikeID)

	tourList, err := tours.List(ctx)
	require.NoError(t, err)
	require.Len(t, tourList, 1)
	assert.Equal(t, "b1", tourList[0].BikeID)
}
