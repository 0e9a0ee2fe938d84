package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	now := testutil.Date(2025, 4, 15)
	proj := testutil.NewTestProject("Depot", testutil.WithCode("DEP-001"))
	crew := testutil.NewTestResource("Civil Crew", "crew")

	excavation := testutil.NewTestPhase(proj.ID, "Excavation",
		testutil.WithPlanned(testutil.Date(2025, 3, 3), testutil.Date(2025, 3, 12)),
		testutil.WithBaseline(testutil.Date(2025, 3, 1), testutil.Date(2025, 3, 10), 10),
		testutil.WithResource(crew.ID),
		testutil.WithCriticalPath(),
		testutil.WithCompletion(40),
	)
	permits := testutil.NewTestPhase(proj.ID, "Permits, Zoning")
	orphan := testutil.NewTestPhase("other-project", "Orphan")

	handover := testutil.NewTestMilestone(proj.ID, "Handover", testutil.WithTargetDate(testutil.Date(2025, 4, 1)))
	approval := testutil.NewTestMilestone(proj.ID, "Approval",
		testutil.WithTargetDate(testutil.Date(2025, 3, 1)),
		testutil.WithActualDate(testutil.Date(2025, 3, 4)))

	return NewReport(
		[]domain.Project{*proj},
		[]domain.Phase{*excavation, *permits, *orphan},
		[]domain.Milestone{*handover, *approval},
		map[string]string{crew.ID: crew.Name},
		now,
	)
}

func TestNewReport_GroupsByProject(t *testing.T) {
	r := sampleReport()
	require.Len(t, r.Projects, 1)
	pr := r.Projects[0]

	require.Len(t, pr.Phases, 2, "phases of unlisted projects are dropped")
	assert.Equal(t, "Civil Crew", pr.Phases[0].Resource)
	require.NotNil(t, pr.Phases[0].Variance)
	assert.Equal(t, 2, pr.Phases[0].Variance.StartVarianceDays)
	assert.Nil(t, pr.Phases[1].Variance)

	require.Len(t, pr.Milestones, 2)
	assert.True(t, pr.Milestones[0].Overdue)
	assert.True(t, pr.Milestones[1].Completed)
	require.NotNil(t, pr.Milestones[1].VarianceDays)
	assert.Equal(t, 3, *pr.Milestones[1].VarianceDays)
}

func TestWriteDelimited_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, sampleReport(), ','))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, PhaseHeader, records[0])

	assert.Equal(t, []string{
		"DEP-001", "Excavation", "Planned", "Medium", "Civil Crew",
		"2025-03-03", "2025-03-12", "10",
		"2025-03-01", "2025-03-10", "2",
		"40", "true",
	}, records[1])
	assert.Equal(t, "Permits, Zoning", records[2][1])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][10])
}

func TestWriteDelimited_TSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, sampleReport(), '\t'))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(PhaseHeader, "\t"), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "DEP-001\tPermits, Zoning\t"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Schedule report, 2025-04-15")
	assert.Contains(t, out, "DEP-001  Depot")
	assert.Contains(t, out, "Excavation")
	assert.Contains(t, out, "+2d")
	assert.Contains(t, out, "overdue")
	assert.Contains(t, out, "done (+3d)")
	assert.NotContains(t, out, "Orphan")
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Report{GeneratedAt: testutil.Date(2025, 1, 1)}))
	assert.Contains(t, buf.String(), "No projects.")
}
