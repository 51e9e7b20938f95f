//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/stores"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingInput() CreateBookingInput {
	return CreateBookingInput{
		HotelID:    1,
		HotelName:  "Grand Plaza",
		Location:   "Miami, Florida",
		CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		RoomType:   "Deluxe Room",
		TotalPrice: 300,
		GuestDetails: booking.GuestDetails{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+1-555-0100",
		},
	}
}

func newBookingCommands(policy booking.ConflictPolicy) (BookingCommands, *stores.BookingStore) {
	store := stores.NewBookingStore(recordstore.NewMemory())
	clk := clock.NewMockClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	return NewBookingCommands(store, policy, clk), store
}

func TestBookingCreate(t *testing.T) {
	t.Parallel()

	cmds, store := newBookingCommands(booking.NeverConflict{})

	created, err := cmds.Create(context.Background(), validBookingInput(), 42)

	require.NoError(t, err)
	assert.Equal(t, 42, created.UserID)
	assert.Equal(t, 3, created.Nights)
	assert.Equal(t, booking.StatusConfirmed, created.Status)
	assert.Equal(t, "STY-001-2025", created.ConfirmationNumber)

	stored, err := store.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "STY-001-2025", stored.ConfirmationNumber)
}

func TestBookingCreate_ValidationRejectedBeforePersistence(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*CreateBookingInput){
		"checkout before checkin": func(in *CreateBookingInput) {
			in.CheckOut = in.CheckIn.AddDate(0, 0, -1)
		},
		"zero guests": func(in *CreateBookingInput) {
			in.Guests = 0
		},
		"missing phone": func(in *CreateBookingInput) {
			in.GuestDetails.Phone = ""
		},
		"negative price": func(in *CreateBookingInput) {
			in.TotalPrice = -1
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmds, store := newBookingCommands(booking.NeverConflict{})
			input := validBookingInput()
			mutate(&input)

			_, err := cmds.Create(context.Background(), input, 42)

			require.ErrorIs(t, err, ErrDomainValidation)
			_, err = store.FindByID(context.Background(), 1)
			assert.Error(t, err)
		})
	}
}

func TestBookingCreate_Conflict(t *testing.T) {
	t.Parallel()

	cmds, store := newBookingCommands(booking.AlwaysConflict{})

	_, err := cmds.Create(context.Background(), validBookingInput(), 42)

	require.ErrorIs(t, err, ErrRoomUnavailable)
	_, err = store.FindByID(context.Background(), 1)
	assert.Error(t, err)
}

// failingConfirmationWriter passes everything through except the
// confirmation-number write, which always fails.
type failingConfirmationWriter struct {
	BookingWriter
}

func (w *failingConfirmationWriter) Update(ctx context.Context, id int, fields recordstore.RawRecord) (booking.Booking, error) {
	if _, ok := fields["confirmation_number_c"]; ok {
		return booking.Booking{}, errs.New("write failed")
	}
	return w.BookingWriter.Update(ctx, id, fields)
}

func TestBookingCreate_ConfirmationWriteFailureRollsBack(t *testing.T) {
	t.Parallel()

	store := stores.NewBookingStore(recordstore.NewMemory())
	clk := clock.NewMockClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	cmds := NewBookingCommands(&failingConfirmationWriter{BookingWriter: store}, booking.NeverConflict{}, clk)

	_, err := cmds.Create(context.Background(), validBookingInput(), 42)
	require.Error(t, err)

	listed, err := store.FindByUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestBookingCancel(t *testing.T) {
	t.Parallel()

	cmds, _ := newBookingCommands(booking.NeverConflict{})
	created, err := cmds.Create(context.Background(), validBookingInput(), 42)
	require.NoError(t, err)

	cancelled, err := cmds.Cancel(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, cancelled.Status)

	// Cancelling again is a no-op, not an error.
	again, err := cmds.Cancel(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, again.Status)
}

func TestBookingCancel_Ownership(t *testing.T) {
	t.Parallel()

	cmds, _ := newBookingCommands(booking.NeverConflict{})
	created, err := cmds.Create(context.Background(), validBookingInput(), 42)
	require.NoError(t, err)

	_, err = cmds.Cancel(context.Background(), created.ID, 7)
	assert.ErrorIs(t, err, ErrBookingAccess)

	_, err = cmds.Cancel(context.Background(), 999, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingCancel_CompletedStayIsFinal(t *testing.T) {
	t.Parallel()

	cmds, store := newBookingCommands(booking.NeverConflict{})
	created, err := cmds.Create(context.Background(), validBookingInput(), 42)
	require.NoError(t, err)

	_, err = store.Update(context.Background(), created.ID, recordstore.RawRecord{
		"status_c": string(booking.StatusCompleted),
	})
	require.NoError(t, err)

	_, err = cmds.Cancel(context.Background(), created.ID, 42)
	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestBookingDelete(t *testing.T) {
	t.Parallel()

	cmds, store := newBookingCommands(booking.NeverConflict{})
	created, err := cmds.Create(context.Background(), validBookingInput(), 42)
	require.NoError(t, err)

	require.ErrorIs(t, cmds.Delete(context.Background(), created.ID, 7), ErrBookingAccess)
	require.NoError(t, cmds.Delete(context.Background(), created.ID, 42))

	_, err = store.FindByID(context.Background(), created.ID)
	assert.Error(t, err)

	require.ErrorIs(t, cmds.Delete(context.Background(), created.ID, 42), ErrBookingNotFound)
}
