package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	projRepo := repository.NewSQLiteProjectRepo(db)
	resRepo := repository.NewSQLiteResourceRepo(db)
	phaseRepo := repository.NewSQLitePhaseRepo(db)
	msRepo := repository.NewSQLiteMilestoneRepo(db)
	settingsRepo := repository.NewSQLiteViewSettingsRepo(db)
	uow := testutil.NewTestUoW(db)

	settings := service.NewSettingsService(settingsRepo, domain.DefaultViewSettings())
	provider := service.NewChainCriticalPathProvider(phaseRepo, 0)
	fixedNow := testutil.Date(2025, time.March, 15)

	return &App{
		Projects:   service.NewProjectService(projRepo),
		Resources:  service.NewResourceService(resRepo),
		Phases:     service.NewPhaseService(phaseRepo, projRepo),
		Milestones: service.NewMilestoneService(msRepo, projRepo),
		Settings:   settings,
		Timeline:   service.NewTimelineService(projRepo, phaseRepo, msRepo, resRepo, settings, 0),
		Schedule:   service.NewScheduleService(uow, provider),
		Export:     service.NewExportService(projRepo, phaseRepo, msRepo, resRepo),
		Import:     service.NewImportService(uow),
		Now:        func() time.Time { return fixedNow },
	}
}

// seedSchedule creates a project with a resource and two chained phases.
func seedSchedule(t *testing.T, app *App) (*domain.Project, *domain.Phase, *domain.Phase) {
	t.Helper()
	ctx := context.Background()

	proj := testutil.NewTestProject("Riverside Clinic", testutil.WithCode("RVC-101"))
	require.NoError(t, app.Projects.Create(ctx, proj))

	crew := testutil.NewTestResource("Civil Crew", "crew")
	require.NoError(t, app.Resources.Create(ctx, crew))

	site := testutil.NewTestPhase(proj.ID, "Site prep",
		testutil.WithPlanned(testutil.Date(2025, time.March, 1), testutil.Date(2025, time.March, 10)),
		testutil.WithResource(crew.ID),
		testutil.WithPhaseStatus(domain.PhaseInProgress),
	)
	require.NoError(t, app.Phases.Create(ctx, site))

	frame := testutil.NewTestPhase(proj.ID, "Framing",
		testutil.WithPlanned(testutil.Date(2025, time.March, 12), testutil.Date(2025, time.April, 4)),
	)
	require.NoError(t, app.Phases.Create(ctx, frame))

	return proj, site, frame
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- Project commands ---

func TestProjectAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "project", "add", "--code", "bld-042", "--name", "Harbor Tower", "--finish", "2025-12-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project Harbor Tower [BLD-042]")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "BLD-042")
	assert.Contains(t, out, "Harbor Tower")
}

func TestProjectAdd_RejectsBadCode(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "project", "add", "--code", "tower", "--name", "Tower")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project code")
}

func TestProjectAdd_RequiresFlags(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "project", "add", "--name", "No Code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code")
}

func TestProjectList_Empty(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found.")
}

func TestProjectInspect_ShowsPhaseTree(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "project", "inspect", "rvc-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Riverside Clinic")
	assert.Contains(t, out, "Site prep")
	assert.Contains(t, out, "Framing")
	assert.Contains(t, out, "Civil Crew")
}

func TestProjectUpdate_ChangesOnlyPassedFlags(t *testing.T) {
	app := testApp(t)
	proj, _, _ := seedSchedule(t, app)

	_, err := executeCmd(t, app, "project", "update", "RVC-101", "--status", "on-hold")
	require.NoError(t, err)

	got, err := app.Projects.GetByID(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectOnHold, got.Status)
	assert.Equal(t, "Riverside Clinic", got.Name)
}

func TestProjectRemove(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "project", "remove", "RVC-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed project")

	_, err = executeCmd(t, app, "project", "inspect", "RVC-101")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- Resource commands ---

func TestResourceAddAndList(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "resource", "add", "Sparks Electric", "--role", "electrical")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "resource", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sparks Electric")
	assert.Contains(t, out, "electrical")

	_, err = executeCmd(t, app, "resource", "add", "sparks electric")
	assert.Error(t, err, "resource names are unique regardless of case")
}

// --- Phase commands ---

func TestPhaseAdd_DerivesDuration(t *testing.T) {
	app := testApp(t)
	proj, _, _ := seedSchedule(t, app)

	out, err := executeCmd(t, app, "phase", "add", "--project", "RVC-101", "--name", "Roofing",
		"--start", "2025-04-07", "--end", "2025-04-11", "--priority", "high", "--resource", "civil crew")
	require.NoError(t, err)
	assert.Contains(t, out, "Added phase Roofing")

	phases, err := app.Phases.ListByProject(context.Background(), proj.ID)
	require.NoError(t, err)
	var roof *domain.Phase
	for _, ph := range phases {
		if ph.Name == "Roofing" {
			roof = ph
		}
	}
	require.NotNil(t, roof)
	assert.Equal(t, 5, roof.DurationDays)
	assert.Equal(t, domain.PriorityHigh, roof.Priority)
	assert.NotNil(t, roof.ResourceID)
}

func TestPhaseAdd_RejectsReversedRange(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	_, err := executeCmd(t, app, "phase", "add", "--project", "RVC-101", "--name", "Backwards",
		"--start", "2025-04-10", "--end", "2025-04-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before")
}

func TestPhaseList(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "phase", "list", "RVC-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Site prep")
	assert.Contains(t, out, "Framing")
	assert.Contains(t, out, "Civil Crew")
}

func TestPhaseUpdate_ByIDPrefix(t *testing.T) {
	app := testApp(t)
	_, site, _ := seedSchedule(t, app)

	out, err := executeCmd(t, app, "phase", "update", site.ID[:8], "--end", "2025-03-14", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated phase Site prep")

	got, err := app.Phases.GetByID(context.Background(), site.ID)
	require.NoError(t, err)
	assert.Equal(t, 14, got.DurationDays)
	assert.Equal(t, domain.PhaseCompleted, got.Status)
}

func TestPhaseProgress_RollsUpProject(t *testing.T) {
	app := testApp(t)
	proj, site, _ := seedSchedule(t, app)

	out, err := executeCmd(t, app, "phase", "progress", site.ID, "--pct", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Site prep")
	assert.Contains(t, out, "100%")

	got, err := app.Projects.GetByID(context.Background(), proj.ID)
	require.NoError(t, err)
	// 10 of 34 planned days are done.
	assert.Equal(t, 29, got.CompletionPct)
}

func TestPhaseProgress_OutOfRange(t *testing.T) {
	app := testApp(t)
	_, site, _ := seedSchedule(t, app)

	_, err := executeCmd(t, app, "phase", "progress", site.ID, "--pct", "150")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 100")
}

func TestPhaseProgress_NeedsPctWhenNotInteractive(t *testing.T) {
	app := testApp(t)
	_, site, _ := seedSchedule(t, app)

	_, err := executeCmd(t, app, "phase", "progress", site.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--pct is required")
}

func TestPhaseRemove(t *testing.T) {
	app := testApp(t)
	proj, _, frame := seedSchedule(t, app)

	_, err := executeCmd(t, app, "phase", "remove", frame.ID)
	require.NoError(t, err)

	phases, err := app.Phases.ListByProject(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Len(t, phases, 1)
}

// --- Milestone commands ---

func TestMilestoneLifecycle(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "milestone", "add", "--project", "RVC-101", "--name", "Slab poured",
		"--target", "2025-03-11", "--type", "review", "--critical")
	require.NoError(t, err)
	assert.Contains(t, out, "Added milestone Slab poured")

	out, err = executeCmd(t, app, "milestone", "list", "RVC-101")
	require.NoError(t, err)
	assert.Contains(t, out, "overdue", "target is before the fixed clock")

	projects, err := app.Projects.List(context.Background())
	require.NoError(t, err)
	ms, err := app.Milestones.ListByProjects(context.Background(), []string{projects[0].ID})
	require.NoError(t, err)
	require.Len(t, ms, 1)

	out, err = executeCmd(t, app, "milestone", "complete", ms[0].ID[:8], "--on", "2025-03-13")
	require.NoError(t, err)
	assert.Contains(t, out, "on 2025-03-13")

	out, err = executeCmd(t, app, "milestone", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "+2d")
}

// --- Timeline ---

func TestTimeline_RendersChart(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "timeline", "--project", "RVC-101", "--zoom", "days", "--width", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Timeline · RVC-101")
	assert.Contains(t, out, "zoom days")
	assert.Contains(t, out, "Site prep")
	assert.Contains(t, out, "Framing")
	assert.Contains(t, out, "planned")
}

func TestTimeline_GroupByResource(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "timeline", "--group", "resource")
	require.NoError(t, err)
	assert.Contains(t, out, "Civil Crew")
	assert.Contains(t, out, "Unassigned")
}

func TestTimeline_StatusFilter(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "timeline", "--status", "in_progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Site prep")
	assert.NotContains(t, out, "Framing")
}

func TestTimeline_RejectsBadFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "timeline", "--zoom", "years")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days|weeks|months|quarters")

	_, err = executeCmd(t, app, "timeline", "--hide", "gridlines")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown toggle")

	_, err = executeCmd(t, app, "timeline", "--today", "15/03/2025")
	require.Error(t, err)
}

func TestTimeline_InteractiveNeedsTerminal(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "timeline", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestTimeline_FlagsDoNotPersist(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "timeline", "--zoom", "quarters")
	require.NoError(t, err)

	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ZoomWeeks, s.Zoom)
}

// --- Settings ---

func TestSettingsSetAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "settings", "set", "--zoom", "months", "--group", "priority", "--show", "baselines", "--hide", "dependencies")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved view settings")

	out, err = executeCmd(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Regexp(t, `zoom\s+months`, out)
	assert.Regexp(t, `group\s+priority`, out)
	assert.Regexp(t, `baselines\s+on`, out)
	assert.Regexp(t, `dependencies\s+off`, out)

	_, err = executeCmd(t, app, "settings", "set", "--status", "planned")
	require.NoError(t, err)
	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Planned"}, s.StatusFilter)
	assert.Equal(t, domain.ZoomMonths, s.Zoom, "earlier changes survive")

	_, err = executeCmd(t, app, "settings", "set", "--clear-filters")
	require.NoError(t, err)
	s, err = app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.StatusFilter)
}

// --- Schedule ---

func TestCriticalPathCmd(t *testing.T) {
	app := testApp(t)
	proj, site, frame := seedSchedule(t, app)

	out, err := executeCmd(t, app, "critical-path", "RVC-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Critical path · RVC-101")
	assert.Contains(t, out, "2 phases")

	phases, err := app.Phases.ListByProject(context.Background(), proj.ID)
	require.NoError(t, err)
	for _, ph := range phases {
		if ph.ID == site.ID || ph.ID == frame.ID {
			assert.True(t, ph.IsCriticalPath, ph.Name)
		}
	}
}

func TestBaselineCmd(t *testing.T) {
	app := testApp(t)
	_, site, _ := seedSchedule(t, app)

	out, err := executeCmd(t, app, "baseline", "RVC-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Baselined 2 phases of RVC-101.")

	got, err := app.Phases.GetByID(context.Background(), site.ID)
	require.NoError(t, err)
	require.True(t, got.HasBaseline())
	assert.Equal(t, *got.PlannedStart, *got.BaselineStart)
}

// --- Export / import ---

func TestExport_CSVToStdout(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "export", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "project,phase,status")
	assert.Contains(t, out, "RVC-101,Site prep,In Progress")
}

func TestExport_ToFile(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)
	path := filepath.Join(t.TempDir(), "schedule.tsv")

	out, err := executeCmd(t, app, "export", "-f", "tsv", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote tsv report")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RVC-101\tFraming")
}

func TestExport_UnknownFormat(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "export", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project:
  code: PLT-07
  name: Water Plant
resources:
  - ref: mech
    name: Mechanical
phases:
  - name: Pumps
    planned_start: "2025-05-01"
    planned_end: "2025-05-20"
    resource_ref: mech
milestones:
  - name: Commissioning
    target_date: "2025-06-01"
`), 0o644))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported project Water Plant [PLT-07]: 1 phases, 1 milestones, 1 new resources")

	out, err = executeCmd(t, app, "phase", "list", "PLT-07")
	require.NoError(t, err)
	assert.Contains(t, out, "Pumps")
	assert.Contains(t, out, "Mechanical")
}
