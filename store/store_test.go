package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AngelStivenToro/OgAwards/store"
	"github.com/AngelStivenToro/OgAwards/testutil"
	"github.com/AngelStivenToro/OgAwards/voting"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.SetupTestDB(t))
}

func TestCreateUser(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, "aria", "aria@example.com")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected a generated user ID")
	}
	if user.CompletedVoting {
		t.Error("New users must start with completed_voting false")
	}

	if _, err := st.CreateUser(ctx, "aria", "other@example.com"); !errors.Is(err, store.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}
	if _, err := st.CreateUser(ctx, "other", "aria@example.com"); !errors.Is(err, store.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestGetUserUnknownIsNil(t *testing.T) {
	st := setupStore(t)

	user, err := st.GetUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil for unknown user, got %+v", user)
	}

	user, err = st.GetUserByUsername(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil for unknown username, got %+v", user)
	}
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	user, _ := testutil.CreateTestUser(t, st, "finisher")

	for i := 0; i < 2; i++ {
		if err := st.MarkCompleted(ctx, user.ID); err != nil {
			t.Fatalf("MarkCompleted call %d failed: %v", i+1, err)
		}
	}

	got, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if !got.CompletedVoting {
		t.Error("Expected completed_voting true after MarkCompleted")
	}
}

func TestInsertDuplicateBallot(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	testutil.SeedTestAwards(t, st, 2, "a1")
	user, _ := testutil.CreateTestUser(t, st, "voter")

	ballot := voting.Ballot{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		AwardID:     "a1",
		Rankings:    []string{testutil.NomineeID("a1", 0)},
		SubmittedAt: time.Now().UTC(),
	}
	if err := st.Insert(ctx, ballot); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	ballot.ID = uuid.NewString()
	if err := st.Insert(ctx, ballot); !errors.Is(err, voting.ErrDuplicateCategoryVote) {
		t.Errorf("Expected ErrDuplicateCategoryVote from the unique constraint, got %v", err)
	}

	count, err := st.CountByAward(ctx, "a1")
	if err != nil {
		t.Fatalf("CountByAward failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 ballot, got %d", count)
	}
}

func TestBallotRoundTrip(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	testutil.SeedTestAwards(t, st, 3, "a1")
	user, _ := testutil.CreateTestUser(t, st, "voter")

	rankings := []string{testutil.NomineeID("a1", 2), testutil.NomineeID("a1", 0)}
	testutil.SubmitTestVote(t, st, user.ID, "a1", rankings)

	ballots, err := st.ListByAward(ctx, "a1")
	if err != nil {
		t.Fatalf("ListByAward failed: %v", err)
	}
	if len(ballots) != 1 {
		t.Fatalf("Expected 1 ballot, got %d", len(ballots))
	}
	if len(ballots[0].Rankings) != 2 || ballots[0].Rankings[0] != rankings[0] {
		t.Errorf("Rankings did not survive the round trip: %v", ballots[0].Rankings)
	}

	awardIDs, err := st.ListAwardIDsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListAwardIDsByUser failed: %v", err)
	}
	if len(awardIDs) != 1 || awardIDs[0] != "a1" {
		t.Errorf("Expected [a1], got %v", awardIDs)
	}
}

func TestSeedAndListCatalog(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	awards := []voting.Award{
		{
			ID:       "best-clip",
			Title:    "Mejor Clip",
			Category: "Clips",
			Nominees: []voting.Nominee{
				{ID: "n1", Name: "Clip uno", Media: &voting.Media{
					Type:  voting.MediaVideo,
					URL:   "https://example.com/clip1.mp4",
					Title: "El clip",
				}},
				{ID: "n2", Name: "Clip dos"},
			},
		},
		{ID: "best-stream", Title: "Mejor Stream", Category: "Streams"},
	}
	if err := st.SeedAwards(ctx, awards); err != nil {
		t.Fatalf("SeedAwards failed: %v", err)
	}

	got, err := st.ListAwards(ctx)
	if err != nil {
		t.Fatalf("ListAwards failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 awards, got %d", len(got))
	}
	if got[0].ID != "best-clip" || got[1].ID != "best-stream" {
		t.Errorf("Awards out of catalog order: %s, %s", got[0].ID, got[1].ID)
	}
	if len(got[0].Nominees) != 2 {
		t.Fatalf("Expected 2 nominees, got %d", len(got[0].Nominees))
	}

	withMedia := got[0].Nominees[0]
	if withMedia.Media == nil || withMedia.Media.URL != "https://example.com/clip1.mp4" {
		t.Errorf("Nominee media did not survive the round trip: %+v", withMedia.Media)
	}
	if got[0].Nominees[1].Media != nil {
		t.Errorf("Expected nil media for a media-less nominee, got %+v", got[0].Nominees[1].Media)
	}

	award, err := st.GetAward(ctx, "best-clip")
	if err != nil {
		t.Fatalf("GetAward failed: %v", err)
	}
	if award == nil || len(award.Nominees) != 2 {
		t.Fatalf("GetAward returned %+v", award)
	}

	award, err = st.GetAward(ctx, "nope")
	if err != nil {
		t.Fatalf("GetAward failed: %v", err)
	}
	if award != nil {
		t.Errorf("Expected nil for unknown award, got %+v", award)
	}
}

func TestSeedFromFile(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	awards := []voting.Award{
		{ID: "a1", Title: "Premio Uno", Nominees: []voting.Nominee{{ID: "n1", Name: "Uno"}}},
	}
	data, err := json.Marshal(awards)
	if err != nil {
		t.Fatalf("Failed to marshal catalog: %v", err)
	}

	path := filepath.Join(t.TempDir(), "awards.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	if err := st.SeedFromFile(ctx, path); err != nil {
		t.Fatalf("SeedFromFile failed: %v", err)
	}

	// A second run against a populated catalog is a no-op, even with a
	// missing file.
	if err := st.SeedFromFile(ctx, filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("SeedFromFile on populated catalog failed: %v", err)
	}

	count, err := st.CountAwards(ctx)
	if err != nil {
		t.Fatalf("CountAwards failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 seeded award, got %d", count)
	}
}
