package services

import (
	"testing"
	"time"

	"glamora-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Admin{},
		&models.Employee{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.Sales{},
		&models.Receipt{},
	))
	return db
}

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBookedSlotsSkipsCancelled(t *testing.T) {
	db := newTestDB(t)

	appts := []models.Appointment{
		{CustomerID: 1, Date: day("2025-03-10"), Time: "10:00:00", Status: models.StatusConfirmed},
		{CustomerID: 1, Date: day("2025-03-10"), Time: "15:00:00", Status: models.StatusScheduled},
		{CustomerID: 1, Date: day("2025-03-11"), Time: "10:00:00", Status: models.StatusCancelled},
		{CustomerID: 2, Date: day("2025-03-12"), Time: "11:00:00", Status: models.StatusConfirmed},
	}
	for i := range appts {
		require.NoError(t, db.Create(&appts[i]).Error)
	}

	booked, err := BookedSlots(db, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"2025-03-10": {"10:00 AM", "3:00 PM"},
	}, booked)
}

func TestBookedSlotsExcludesAppointmentBeingEdited(t *testing.T) {
	db := newTestDB(t)

	editing := models.Appointment{CustomerID: 1, Date: day("2025-03-10"), Time: "10:00:00", Status: models.StatusConfirmed}
	other := models.Appointment{CustomerID: 1, Date: day("2025-03-10"), Time: "14:00:00", Status: models.StatusConfirmed}
	require.NoError(t, db.Create(&editing).Error)
	require.NoError(t, db.Create(&other).Error)

	booked, err := BookedSlots(db, 1, editing.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"2025-03-10": {"2:00 PM"}}, booked)
}

func TestCanModifyTwentyFourHourGate(t *testing.T) {
	appt := &models.Appointment{Date: day("2025-01-10"), Time: "10:00:00"}

	defer func() { timeNow = time.Now }()

	// 25 hours before the appointment: allowed.
	timeNow = func() time.Time {
		return time.Date(2025, 1, 9, 9, 0, 0, 0, time.Local)
	}
	assert.NoError(t, CanModify(appt))

	// 23 hours before: inside the gate.
	timeNow = func() time.Time {
		return time.Date(2025, 1, 9, 11, 0, 0, 0, time.Local)
	}
	assert.ErrorIs(t, CanModify(appt), ErrTooLate)
}

func TestValidateRescheduleRequiresLaterDate(t *testing.T) {
	appt := &models.Appointment{Date: day("2025-01-10"), Time: "10:00:00"}

	defer func() { timeNow = time.Now }()
	timeNow = func() time.Time {
		return time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local)
	}

	assert.ErrorIs(t, ValidateReschedule(appt, day("2025-01-10")), ErrDateNotLater)
	assert.ErrorIs(t, ValidateReschedule(appt, day("2025-01-09")), ErrDateNotLater)
	assert.NoError(t, ValidateReschedule(appt, day("2025-01-11")))
}

func TestAppointmentTimeFallsBackToNoon(t *testing.T) {
	appt := &models.Appointment{Date: day("2025-01-10"), Time: "whenever"}
	at := AppointmentTime(appt)
	assert.Equal(t, 12, at.Hour())
	assert.Equal(t, 0, at.Minute())
}
