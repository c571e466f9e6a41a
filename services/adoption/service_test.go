package adoption

import (
	"context"
	"errors"
	"sync"
	"testing"

	"purrfect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeAdoptionRepo struct {
	mu           sync.Mutex
	listings     map[string]*models.AdoptionListing
	applications []*models.AdoptionApplication
}

func newFakeAdoptionRepo() *fakeAdoptionRepo {
	return &fakeAdoptionRepo{listings: make(map[string]*models.AdoptionListing)}
}

func (f *fakeAdoptionRepo) CreateListing(ctx context.Context, l *models.AdoptionListing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeAdoptionRepo) GetListing(ctx context.Context, id string) (*models.AdoptionListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *l
	return &cp, nil
}

func (f *fakeAdoptionRepo) ListListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page := &models.ListingPage{Page: filter.Page, Limit: filter.Limit}
	for _, l := range f.listings {
		page.Listings = append(page.Listings, *l)
	}
	page.Total = int64(len(page.Listings))
	return page, nil
}

func (f *fakeAdoptionRepo) CreateApplication(ctx context.Context, a *models.AdoptionApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Unique (listing, applicant) index.
	for _, existing := range f.applications {
		if existing.ListingID == a.ListingID && existing.ApplicantID == a.ApplicantID {
			return errors.New("duplicate key")
		}
	}
	cp := *a
	f.applications = append(f.applications, &cp)
	return nil
}

func (f *fakeAdoptionRepo) HasApplied(ctx context.Context, listingID, applicantID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.applications {
		if a.ListingID == listingID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdoptionRepo) ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]models.AdoptionApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AdoptionApplication
	for _, a := range f.applications {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAdoptionRepo) ListApplicationsForOwner(ctx context.Context, ownerID string) ([]models.AdoptionApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AdoptionApplication
	for _, a := range f.applications {
		if l, ok := f.listings[a.ListingID]; ok && l.UserID == ownerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type noopNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (n *noopNotifier) Notify(ctx context.Context, userID, title, message, ntype string, data map[string]any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, models.Notification{UserID: userID, Title: title, Type: ntype})
	return nil
}

func (n *noopNotifier) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	return nil, nil
}

func (n *noopNotifier) MarkRead(ctx context.Context, id, userID string) error { return nil }

func newAdoptionService(t *testing.T) (*DefaultAdoptionService, *fakeAdoptionRepo, *noopNotifier) {
	t.Helper()
	repo := newFakeAdoptionRepo()
	notifier := &noopNotifier{}
	return &DefaultAdoptionService{
		Repo:     repo,
		Notifier: notifier,
		Logger:   zaptest.NewLogger(t),
	}, repo, notifier
}

func availableListing(t *testing.T, svc *DefaultAdoptionService) *models.AdoptionListing {
	t.Helper()
	l, err := svc.CreateListing(context.Background(), "owner-1", models.AdoptionListing{
		PetName:     "Milo",
		Species:     "dog",
		Description: "Friendly terrier mix",
		Location:    "Nairobi",
	})
	require.NoError(t, err)
	return l
}

func TestApply(t *testing.T) {
	svc, _, notifier := newAdoptionService(t)
	l := availableListing(t, svc)

	app, err := svc.Apply(context.Background(), "applicant-1", l.ID, map[string]any{"home": "apartment"})
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)
	assert.Equal(t, l.ID, app.ListingID)

	// The listing owner hears about it.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "owner-1", notifier.sent[0].UserID)
	assert.Equal(t, "adoption", notifier.sent[0].Type)
}

func TestApplyDuplicate(t *testing.T) {
	svc, _, notifier := newAdoptionService(t)
	l := availableListing(t, svc)

	_, err := svc.Apply(context.Background(), "applicant-1", l.ID, nil)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "applicant-1", l.ID, nil)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)

	// Only the first application notified the owner.
	assert.Len(t, notifier.sent, 1)
}

func TestApplyOwnListing(t *testing.T) {
	svc, _, _ := newAdoptionService(t)
	l := availableListing(t, svc)

	_, err := svc.Apply(context.Background(), "owner-1", l.ID, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestApplyUnavailableListing(t *testing.T) {
	svc, repo, _ := newAdoptionService(t)
	l := availableListing(t, svc)
	repo.listings[l.ID].Status = models.ListingAdopted

	_, err := svc.Apply(context.Background(), "applicant-1", l.ID, nil)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
}

func TestApplyUnknownListing(t *testing.T) {
	svc, _, _ := newAdoptionService(t)

	_, err := svc.Apply(context.Background(), "applicant-1", "no-such-listing", nil)
	var nErr *NotFoundError
	require.ErrorAs(t, err, &nErr)
}

func TestCreateListingValidation(t *testing.T) {
	svc, _, _ := newAdoptionService(t)

	_, err := svc.CreateListing(context.Background(), "owner-1", models.AdoptionListing{PetName: "Milo"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}
