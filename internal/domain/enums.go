package domain

type CaseStatus string

const (
	CasePendingReferral CaseStatus = "pending_referral"
	CaseWelcome         CaseStatus = "welcome"
	CaseCoDiagnosis     CaseStatus = "co_diagnosis"
	CaseSharedPlanning  CaseStatus = "shared_planning"
	CaseAccompaniment   CaseStatus = "accompaniment"
	CaseFollowUp        CaseStatus = "follow_up"
	CaseClosed          CaseStatus = "closed"
)

// CaseStatusOrder lists the workflow stages in their nominal progression.
// The order is advisory: any jump between stages is permitted, it only
// drives default-view selection and color coding.
var CaseStatusOrder = []CaseStatus{
	CasePendingReferral,
	CaseWelcome,
	CaseCoDiagnosis,
	CaseSharedPlanning,
	CaseAccompaniment,
	CaseFollowUp,
	CaseClosed,
}

// ValidCaseStatuses is the canonical set of accepted case status strings.
var ValidCaseStatuses = map[string]bool{
	"pending_referral": true, "welcome": true, "co_diagnosis": true,
	"shared_planning": true, "accompaniment": true, "follow_up": true,
	"closed": true,
}

type InterventionStatus string

const (
	InterventionPlanned   InterventionStatus = "planned"
	InterventionCompleted InterventionStatus = "completed"
	InterventionCancelled InterventionStatus = "cancelled"
)

// ValidInterventionStatuses is the canonical set of accepted intervention
// status strings.
var ValidInterventionStatuses = map[string]bool{
	"planned": true, "completed": true, "cancelled": true,
}

type InterventionType string

const (
	TypeHomeVisit     InterventionType = "home_visit"
	TypeInterview     InterventionType = "interview"
	TypeCall          InterventionType = "call"
	TypeAccompaniment InterventionType = "accompaniment"
	TypeFamilyMeeting InterventionType = "family_meeting"
	TypeCoordination  InterventionType = "coordination"
	TypeTraining      InterventionType = "training"
	TypePaperwork     InterventionType = "paperwork"
)

type TypeCategory string

const (
	CategoryCase          TypeCategory = "case"
	CategoryGeneral       TypeCategory = "general"
	CategoryAccompaniment TypeCategory = "accompaniment"
)

// interventionTypeCategories maps every accepted type to its category.
var interventionTypeCategories = map[InterventionType]TypeCategory{
	TypeHomeVisit:     CategoryCase,
	TypeInterview:     CategoryCase,
	TypeCall:          CategoryCase,
	TypeFamilyMeeting: CategoryCase,
	TypeAccompaniment: CategoryAccompaniment,
	TypeCoordination:  CategoryGeneral,
	TypeTraining:      CategoryGeneral,
	TypePaperwork:     CategoryGeneral,
}

// Default types per category, used by the editor to seed new drafts.
const (
	DefaultCaseType          = TypeInterview
	DefaultGeneralType       = TypeCoordination
	DefaultAccompanimentType = TypeAccompaniment
)

// CategoryOf returns the category of a type, or CategoryCase for unknown
// values so that stray data still lands in a case-scoped view.
func CategoryOf(t InterventionType) TypeCategory {
	if c, ok := interventionTypeCategories[t]; ok {
		return c
	}
	return CategoryCase
}

// ValidInterventionType reports whether t is one of the accepted types.
func ValidInterventionType(t InterventionType) bool {
	_, ok := interventionTypeCategories[t]
	return ok
}

type Role string

const (
	RoleSocialWorker   Role = "social_worker"
	RoleEdisTechnician Role = "edis_technician"
	RoleCoordinator    Role = "coordinator"
)

var ValidRoles = map[string]bool{
	string(RoleSocialWorker):   true,
	string(RoleEdisTechnician): true,
	string(RoleCoordinator):    true,
}
