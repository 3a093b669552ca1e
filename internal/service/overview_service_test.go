package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sofiaherrero/vinculo/internal/alerting"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/repository"
	"github.com/sofiaherrero/vinculo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOverview(t *testing.T) (OverviewService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewOverviewService(
		repository.NewSQLiteCaseRepo(database),
		repository.NewSQLiteInterventionRepo(database),
		repository.NewSQLiteProfessionalRepo(database),
		repository.NewSQLiteProfileRepo(database),
	)
	return svc, database
}

func TestOverview_AgendaScopedToCurrentUser(t *testing.T) {
	svc, database := setupOverview(t)
	ctx := context.Background()
	// Fixed midday instant so now+1h stays on the same calendar day; a
	// wall-clock "now" makes this flake in the hour before midnight UTC.
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	profile := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, profile.SetCurrentUserID(ctx, "userA"))

	ivs := repository.NewSQLiteInterventionRepo(database)
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("mine",
		testutil.WithCreatedBy("userA"), testutil.WithStart(now.Add(time.Hour)))))
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("theirs",
		testutil.WithCreatedBy("userB"), testutil.WithStart(now.Add(time.Hour)))))

	agenda, err := svc.Agenda(ctx, now)
	require.NoError(t, err)
	require.Len(t, agenda, 1)
	assert.Equal(t, "mine", agenda[0].Title)
}

func TestOverview_AgendaWithoutProfileErrors(t *testing.T) {
	svc, _ := setupOverview(t)
	_, err := svc.Agenda(context.Background(), time.Now().UTC())
	require.Error(t, err)
}

func TestOverview_ExpiredCrossesCaseAndGeneral(t *testing.T) {
	svc, database := setupOverview(t)
	ctx := context.Background()
	now := time.Now().UTC()

	cases := repository.NewSQLiteCaseRepo(database)
	ivs := repository.NewSQLiteInterventionRepo(database)
	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("stale case visit",
		testutil.WithCaseID(c.ID), testutil.WithStart(now.Add(-30*time.Hour)))))
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("stale general",
		testutil.WithStart(now.Add(-26*time.Hour)))))
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("fresh",
		testutil.WithStart(now.Add(-time.Hour)))))

	expired, err := svc.Expired(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, "stale case visit", expired[0].Title, "oldest first")
}

func TestOverview_TeamGapsAndBreakdowns(t *testing.T) {
	svc, database := setupOverview(t)
	ctx := context.Background()

	cases := repository.NewSQLiteCaseRepo(database)
	pros := repository.NewSQLiteProfessionalRepo(database)

	sw := testutil.NewTestProfessional("Marta", testutil.WithCEAS("Norte"))
	require.NoError(t, pros.Upsert(ctx, sw))

	staffed := testutil.NewTestCase("staffed")
	require.NoError(t, cases.Create(ctx, staffed))
	require.NoError(t, cases.AssignProfessional(ctx, staffed.ID, sw.ID))

	bare := testutil.NewTestCase("bare", testutil.WithCaseStatus(domain.CaseWelcome))
	require.NoError(t, cases.Create(ctx, bare))

	gaps, err := svc.TeamGaps(ctx)
	require.NoError(t, err)
	assert.Len(t, gaps, 2, "one misses a technician, the other misses both")

	byStatus, err := svc.StatusBreakdown(ctx)
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byCEAS, err := svc.CEASBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, byCEAS, 2)
	for _, g := range byCEAS {
		switch g.Key {
		case "Norte", alerting.UnassignedCEAS:
		default:
			t.Fatalf("unexpected CEAS bucket %q", g.Key)
		}
	}
}
