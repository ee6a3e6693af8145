package services

import (
	"errors"
	"time"

	"glamora-backend/models"
	"glamora-backend/utils"

	"gorm.io/gorm"
)

// timeNow is a variable for testability.
var timeNow = time.Now

var (
	// ErrTooLate rejects edits inside the 24-hour window before the
	// appointment.
	ErrTooLate = errors.New("You can only modify bookings that are more than 24 hours away.")
	// ErrDateNotLater rejects reschedules that do not move the booking
	// strictly forward.
	ErrDateNotLater = errors.New("You can only select dates after the current booking date.")
)

// BookedSlots returns the occupied (date, time) pairs for a customer,
// keyed by "2006-01-02" date with 12-hour time labels, so the booking UI
// can disable matching slots. Only confirmed and scheduled appointments
// occupy slots. excludeAppointmentID (0 = none) lets the edit flow ignore
// the booking being edited.
func BookedSlots(db *gorm.DB, customerID uint, excludeAppointmentID uint) (map[string][]string, error) {
	query := db.Model(&models.Appointment{}).
		Where("customer_id = ? AND status IN ?", customerID, []string{models.StatusConfirmed, models.StatusScheduled}).
		Order("date, time")
	if excludeAppointmentID != 0 {
		query = query.Where("id != ?", excludeAppointmentID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}

	booked := make(map[string][]string)
	for _, appt := range appointments {
		dateKey := appt.Date.Format("2006-01-02")
		booked[dateKey] = append(booked[dateKey], utils.FormatTimeLabel(appt.Time))
	}
	return booked, nil
}

// AppointmentTime combines an appointment's date and stored time-of-day
// into a single instant in local time.
func AppointmentTime(appt *models.Appointment) time.Time {
	tod, err := time.Parse("15:04:05", appt.Time)
	if err != nil {
		if tod, err = time.Parse("15:04", appt.Time); err != nil {
			// Unparseable times default to noon, same as the booking UI.
			tod = time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)
		}
	}
	d := appt.Date
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), 0, 0, time.Local)
}

// CanModify enforces the 24-hour edit gate: an appointment may only be
// changed while its start is more than 24 hours in the future.
func CanModify(appt *models.Appointment) error {
	if AppointmentTime(appt).Sub(timeNow()) < 24*time.Hour {
		return ErrTooLate
	}
	return nil
}

// ValidateReschedule applies the edit rules for moving an appointment:
// the 24-hour gate on the existing slot, and the new date strictly after
// the original date.
func ValidateReschedule(appt *models.Appointment, newDate time.Time) error {
	if err := CanModify(appt); err != nil {
		return err
	}
	oldDay := appt.Date.Truncate(24 * time.Hour)
	newDay := newDate.Truncate(24 * time.Hour)
	if !newDay.After(oldDay) {
		return ErrDateNotLater
	}
	return nil
}
