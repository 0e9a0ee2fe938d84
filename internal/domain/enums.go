package domain

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectPlanning: true, ProjectActive: true, ProjectOnHold: true,
	ProjectCompleted: true, ProjectCancelled: true,
}

// PhaseStatus values are stored and filtered by their display form.
type PhaseStatus string

const (
	PhasePlanned    PhaseStatus = "Planned"
	PhaseInProgress PhaseStatus = "In Progress"
	PhaseCompleted  PhaseStatus = "Completed"
	PhaseOnHold     PhaseStatus = "On Hold"
	PhaseCancelled  PhaseStatus = "Cancelled"
)

// ValidPhaseStatuses is the canonical set of accepted phase status strings.
var ValidPhaseStatuses = map[PhaseStatus]bool{
	PhasePlanned: true, PhaseInProgress: true, PhaseCompleted: true,
	PhaseOnHold: true, PhaseCancelled: true,
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true, PriorityCritical: true,
}

type MilestoneType string

const (
	MilestoneDelivery MilestoneType = "delivery"
	MilestoneReview   MilestoneType = "review"
	MilestonePayment  MilestoneType = "payment"
	MilestoneApproval MilestoneType = "approval"
	MilestoneStart    MilestoneType = "start"
	MilestoneFinish   MilestoneType = "finish"
)

// ValidMilestoneTypes is the canonical set of accepted milestone type strings.
var ValidMilestoneTypes = map[MilestoneType]bool{
	MilestoneDelivery: true, MilestoneReview: true, MilestonePayment: true,
	MilestoneApproval: true, MilestoneStart: true, MilestoneFinish: true,
}

// ZoomLevel is the temporal granularity of the timeline header.
type ZoomLevel string

const (
	ZoomDays     ZoomLevel = "days"
	ZoomWeeks    ZoomLevel = "weeks"
	ZoomMonths   ZoomLevel = "months"
	ZoomQuarters ZoomLevel = "quarters"
)

// ZoomLevels lists zoom levels from finest to coarsest.
var ZoomLevels = []ZoomLevel{ZoomDays, ZoomWeeks, ZoomMonths, ZoomQuarters}

// GroupMode selects how phases are bucketed into lanes.
type GroupMode string

const (
	GroupNone     GroupMode = "none"
	GroupStatus   GroupMode = "status"
	GroupResource GroupMode = "resource"
	GroupPriority GroupMode = "priority"
)

// GroupModes lists grouping modes in cycling order.
var GroupModes = []GroupMode{GroupNone, GroupStatus, GroupResource, GroupPriority}
