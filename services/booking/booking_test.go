package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appointmentRepo "purrfect/database/repository/appointment"
	"purrfect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakePetRepo struct {
	pets map[string]*models.Pet // petID -> pet
}

func (f *fakePetRepo) Create(ctx context.Context, p *models.Pet) error { return nil }

func (f *fakePetRepo) GetOwned(ctx context.Context, petID, ownerID string) (*models.Pet, error) {
	p, ok := f.pets[petID]
	if !ok || p.UserID != ownerID {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (f *fakePetRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range f.pets {
		if p.UserID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePetRepo) Update(ctx context.Context, p *models.Pet) error          { return nil }
func (f *fakePetRepo) Delete(ctx context.Context, petID, ownerID string) error  { return nil }
func (f *fakePetRepo) AddHealthRecord(ctx context.Context, r *models.HealthRecord) error {
	return nil
}
func (f *fakePetRepo) AddVaccination(ctx context.Context, v *models.Vaccination) error { return nil }
func (f *fakePetRepo) AddHealthMetric(ctx context.Context, m *models.HealthMetric) error {
	return nil
}
func (f *fakePetRepo) AddHealthAlert(ctx context.Context, a *models.HealthAlert) error { return nil }
func (f *fakePetRepo) AddBehaviorLog(ctx context.Context, b *models.BehaviorLog) error { return nil }
func (f *fakePetRepo) ListHealthRecords(ctx context.Context, petID string) ([]models.HealthRecord, error) {
	return nil, nil
}
func (f *fakePetRepo) ListVaccinations(ctx context.Context, petID string) ([]models.Vaccination, error) {
	return nil, nil
}
func (f *fakePetRepo) ListHealthMetricsSince(ctx context.Context, petID string, sinceDays int) ([]models.HealthMetric, error) {
	return nil, nil
}
func (f *fakePetRepo) ListActiveHealthAlerts(ctx context.Context, petID string) ([]models.HealthAlert, error) {
	return nil, nil
}
func (f *fakePetRepo) ListBehaviorLogsSince(ctx context.Context, petID string, sinceDays int) ([]models.BehaviorLog, error) {
	return nil, nil
}

type fakeSlotRepo struct {
	slot *models.Slot
}

func (f *fakeSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	return nil, nil
}

func (f *fakeSlotRepo) GetByVetAndDate(ctx context.Context, vetID, date string) ([]models.Slot, error) {
	if f.slot != nil && f.slot.VetID == vetID && f.slot.Date == date {
		return []models.Slot{*f.slot}, nil
	}
	return nil, nil
}

func (f *fakeSlotRepo) GetBookable(ctx context.Context, slotID, vetID, date string) (*models.Slot, error) {
	s := f.slot
	if s == nil || s.ID != slotID || s.VetID != vetID || s.Date != date || !s.IsAvailable {
		return nil, errors.New("not found")
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	if f.slot != nil && f.slot.ID == slotID {
		cp := *f.slot
		return &cp, nil
	}
	return nil, errors.New("not found")
}

// fakeAppointmentRepo mirrors the conditional capacity reservation: the
// booking only succeeds while current < max, checked and applied under one
// lock.
type fakeAppointmentRepo struct {
	mu       sync.Mutex
	slot     *models.Slot
	booked   []*models.Appointment
	videos   []*models.VideoSession
	videoErr error
}

func (f *fakeAppointmentRepo) Book(ctx context.Context, appt *models.Appointment, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.slot
	if s == nil || s.ID != appt.SlotID || s.VetID != appt.VetID || s.Date != date ||
		s.CurrentBookings >= s.MaxBookings {
		return appointmentRepo.ErrSlotUnavailable
	}
	s.CurrentBookings++
	s.IsAvailable = s.CurrentBookings < s.MaxBookings
	f.booked = append(f.booked, appt)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, errors.New("not found")
}

func (f *fakeAppointmentRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.booked {
		for _, id := range petIDs {
			if a.PetID == id {
				out = append(out, *a)
			}
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByVet(ctx context.Context, vetID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.booked {
		if a.VetID == vetID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CreateVideoSession(ctx context.Context, vs *models.VideoSession) error {
	if f.videoErr != nil {
		return f.videoErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videos = append(f.videos, vs)
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []models.Notification
	fail  bool
}

func (f *fakeNotifier) Notify(ctx context.Context, userID, title, message, ntype string, data map[string]any) error {
	if f.fail {
		return errors.New("notifier down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, models.Notification{UserID: userID, Title: title, Message: message, Type: ntype})
	return nil
}

func (f *fakeNotifier) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, id, userID string) error { return nil }

type fakeAnalytics struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent
	fail   bool
}

func (f *fakeAnalytics) Record(ctx context.Context, ev *models.AnalyticsEvent) error {
	if f.fail {
		return errors.New("analytics down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakeAnalytics) Summarize(ctx context.Context, from, to time.Time) (*models.AnalyticsSummary, error) {
	return nil, nil
}

func newTestService(t *testing.T, slot *models.Slot) (*DefaultBookingService, *fakeAppointmentRepo, *fakeNotifier, *fakeAnalytics) {
	t.Helper()
	pets := &fakePetRepo{pets: map[string]*models.Pet{
		"pet-1": {ID: "pet-1", UserID: "owner-1", Name: "Simba"},
	}}
	slots := &fakeSlotRepo{slot: slot}
	appts := &fakeAppointmentRepo{slot: slot}
	notifier := &fakeNotifier{}
	analytics := &fakeAnalytics{}
	svc := &DefaultBookingService{
		PetRepo:         pets,
		SlotRepo:        slots,
		AppointmentRepo: appts,
		Notifier:        notifier,
		Analytics:       analytics,
		Logger:          zaptest.NewLogger(t),
		VideoBaseURL:    "https://video.example.com/session",
	}
	return svc, appts, notifier, analytics
}

func testSlot(max int) *models.Slot {
	return &models.Slot{
		ID:          "slot-1",
		VetID:       "vet-1",
		Date:        "2026-09-01",
		StartTime:   "09:00",
		EndTime:     "09:30",
		SlotType:    models.SlotTypeRegular,
		MaxBookings: max,
		IsAvailable: true,
	}
}

func bookReq() models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		PetID:       "pet-1",
		VetID:       "vet-1",
		SlotID:      "slot-1",
		Date:        "2026-09-01",
		ServiceType: "checkup",
	}
}

func TestBookAppointment(t *testing.T) {
	svc, appts, notifier, analytics := newTestService(t, testSlot(3))

	booked, err := svc.BookAppointment(context.Background(), "owner-1", bookReq())
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 09:30", booked.Time)
	assert.Equal(t, models.AppointmentScheduled, booked.Status)
	assert.Equal(t, models.ModeInPerson, booked.Mode)
	assert.Equal(t, "2026-09-01", booked.ScheduledAt.Format("2006-01-02"))
	require.Len(t, appts.booked, 1)

	// Owner and vet each get one notification, plus one analytics event.
	assert.Len(t, notifier.sent, 2)
	require.Len(t, analytics.events, 1)
	assert.Equal(t, "appointment_booked", analytics.events[0].EventType)
}

func TestBookAppointmentVideoSession(t *testing.T) {
	svc, appts, _, _ := newTestService(t, testSlot(1))

	req := bookReq()
	req.Mode = models.ModeVideo
	booked, err := svc.BookAppointment(context.Background(), "owner-1", req)
	require.NoError(t, err)
	assert.Equal(t, models.ModeVideo, booked.Mode)
	require.Len(t, appts.videos, 1)
	assert.Contains(t, appts.videos[0].SessionURL, "https://video.example.com/session/")
	assert.Equal(t, booked.ID, appts.videos[0].AppointmentID)
}

func TestBookAppointmentMissingFields(t *testing.T) {
	svc, appts, _, _ := newTestService(t, testSlot(1))

	req := bookReq()
	req.ServiceType = ""
	_, err := svc.BookAppointment(context.Background(), "owner-1", req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, appts.booked)
}

func TestBookAppointmentUnknownMode(t *testing.T) {
	svc, _, _, _ := newTestService(t, testSlot(1))

	req := bookReq()
	req.Mode = "telepathy"
	_, err := svc.BookAppointment(context.Background(), "owner-1", req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestBookAppointmentForeignPet(t *testing.T) {
	svc, appts, notifier, _ := newTestService(t, testSlot(1))

	_, err := svc.BookAppointment(context.Background(), "owner-2", bookReq())

	var nErr *NotFoundError
	require.ErrorAs(t, err, &nErr)
	assert.Empty(t, appts.booked)
	assert.Empty(t, notifier.sent)
}

func TestBookAppointmentSlotExhausted(t *testing.T) {
	slot := testSlot(1)
	slot.CurrentBookings = 1
	slot.IsAvailable = false
	svc, appts, _, _ := newTestService(t, slot)

	_, err := svc.BookAppointment(context.Background(), "owner-1", bookReq())

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Empty(t, appts.booked)
}

func TestBookAppointmentConcurrentSingleCapacity(t *testing.T) {
	svc, appts, _, _ := newTestService(t, testSlot(1))

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.BookAppointment(context.Background(), "owner-1", bookReq())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		conflicts++
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, appts.booked, 1)
	assert.Equal(t, 1, appts.slot.CurrentBookings)
}

func TestBookAppointmentSideEffectFailuresSwallowed(t *testing.T) {
	svc, appts, notifier, analytics := newTestService(t, testSlot(1))
	notifier.fail = true
	analytics.fail = true
	appts.videoErr = errors.New("video store down")

	req := bookReq()
	req.Mode = models.ModeVideo
	booked, err := svc.BookAppointment(context.Background(), "owner-1", req)

	require.NoError(t, err)
	assert.NotEmpty(t, booked.ID)
	assert.Len(t, appts.booked, 1)
}

func TestListAppointmentsForOwner(t *testing.T) {
	svc, appts, _, _ := newTestService(t, testSlot(2))

	_, err := svc.BookAppointment(context.Background(), "owner-1", bookReq())
	require.NoError(t, err)

	got, err := svc.ListAppointmentsForOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Len(t, appts.booked, 1)

	empty, err := svc.ListAppointmentsForOwner(context.Background(), "owner-9")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSetupSlotsValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil)

	_, err := svc.SetupSlots(context.Background(), models.SetupSlotsRequest{
		VetID: "vet-1",
		Date:  "not-a-date",
		Slots: []models.Slot{{StartTime: "09:00", EndTime: "09:30"}},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SetupSlots(context.Background(), models.SetupSlotsRequest{
		VetID: "vet-1",
		Date:  "2026-09-01",
		Slots: []models.Slot{{StartTime: "9am", EndTime: "09:30"}},
	})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SetupSlots(context.Background(), models.SetupSlotsRequest{
		VetID: "vet-1",
		Date:  "2026-09-01",
	})
	require.ErrorAs(t, err, &vErr)
}
