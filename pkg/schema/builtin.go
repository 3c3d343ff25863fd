package schema

import (
	"regexp"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// Built-in entity type names.
const (
	EntityJobs       = "jobs"
	EntityActivities = "activities"
	EntityTriage     = "triage"
)

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Shared value lists. Slices are copied into each schema on construction.
var (
	jobStatuses      = []string{"Open", "In Progress", "Completed", "Cancelled", "Blocked"}
	activityStatuses = []string{"Open", "In Progress", "Completed", "Blocked", "Cancelled"}
	priorities       = []string{"Low", "Medium", "High", "Emergency"}
	activityTypes    = []string{"Update", "Call", "Email", "Assignment", "Follow-up", "Onsite", "Resolution"}
	serviceTypes     = []string{
		"Jump Start", "Tyre Change", "Locksmith", "Mechanic", "Fuel Delivery", "Fuel Extraction",
		"Truck Tyre", "Pre-Purchase Inspection", "Trailer Inspection", "Non Emergency", "Follow-Up", "DNC",
	}
	connectionTypes = []string{
		"Client Job in Progress Team", "Client Post Job Support", "Supplier Job in Progress Team",
		"Supplier Post Job Support", "Blacklist Caller",
	}
	consentValues = []string{"Yes", "No", "Does Not Apply"}
	dncReasons    = []string{
		"Incorrect Phone Number", "Membership/Subscription/Wrong Number", "Out of Scope",
		"Resolved themselves", "Only have cash", "Too expensive", "Not an emergency",
		"Wait time is too long", "Hang up no explanation", "Hang up annoyed/frustrated",
		"Hang up rude/abusive", "No response/silent call", "Did not consent to further contact",
	}
)

func field(name string, def types.FieldDef) types.NamedField {
	return types.NamedField{Name: name, Def: def}
}

func lengths(minLen, maxLen int) *types.Constraints {
	c := &types.Constraints{}
	if minLen > 0 {
		c.MinLength = types.Int(minLen)
	}
	if maxLen > 0 {
		c.MaxLength = types.Int(maxLen)
	}
	return c
}

func atLeast(v float64) *types.Constraints {
	return &types.Constraints{Min: types.Float(v)}
}

func phone() *types.Constraints {
	return &types.Constraints{Pattern: phonePattern}
}

func email() *types.Constraints {
	return &types.Constraints{Pattern: emailPattern}
}

// Jobs is the schema of a dispatch job.
var Jobs = types.MustEntitySchema(EntityJobs,
	field("id", types.FieldDef{Type: types.FieldTypeNumber, Required: true, DisplayName: "Job ID", Validation: atLeast(1)}),
	field("title", types.FieldDef{Type: types.FieldTypeString, Required: true, DisplayName: "Job Title", Validation: lengths(1, 255)}),
	field("status", types.FieldDef{Type: types.FieldTypeChoice, Required: true, DisplayName: "Status", Values: jobStatuses, Default: types.Literal{Value: "Open"}}),
	field("priority", types.FieldDef{Type: types.FieldTypeChoice, DisplayName: "Priority", Values: priorities, Default: types.Literal{Value: "Medium"}}),
	field("customer", types.FieldDef{Type: types.FieldTypeString, Required: true, DisplayName: "Customer", Validation: lengths(1, 255)}),
	field("customerPhone", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Customer Phone", Validation: phone()}),
	field("customerEmail", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Customer Email", Validation: email()}),
	field("supplier", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Supplier", Validation: lengths(0, 255)}),
	field("supplierPhone", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Supplier Phone", Validation: phone()}),
	field("location", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Location", Validation: lengths(0, 500)}),
	field("vehicleRego", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Vehicle Registration", Validation: lengths(0, 20)}),
	field("jobType", types.FieldDef{Type: types.FieldTypeChoice, DisplayName: "Job Type", Values: serviceTypes}),
	field("createdDate", types.FieldDef{Type: types.FieldTypeDatetime, Required: true, DisplayName: "Created Date", Default: NowISO}),
	field("modifiedDate", types.FieldDef{Type: types.FieldTypeDatetime, DisplayName: "Modified Date"}),
	field("createdBy", types.FieldDef{Type: types.FieldTypeString, Required: true, DisplayName: "Created By"}),
	field("modifiedBy", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Modified By"}),
	field("cost", types.FieldDef{Type: types.FieldTypeCurrency, DisplayName: "Cost", Validation: atLeast(0)}),
	field("description", types.FieldDef{Type: types.FieldTypeText, DisplayName: "Description", Validation: lengths(0, 2000)}),
	field("notes", types.FieldDef{Type: types.FieldTypeText, DisplayName: "Notes", Validation: lengths(0, 2000)}),
)

// Activities is the schema of a service activity logged against a job.
var Activities = types.MustEntitySchema(EntityActivities,
	field("id", types.FieldDef{Type: types.FieldTypeNumber, Required: true, DisplayName: "Activity ID", Validation: atLeast(1)}),
	field("jobId", types.FieldDef{Type: types.FieldTypeNumber, Required: true, DisplayName: "Job ID", Validation: atLeast(1)}),
	field("type", types.FieldDef{Type: types.FieldTypeChoice, Required: true, DisplayName: "Activity Type", Values: activityTypes, Default: types.Literal{Value: "Update"}}),
	field("status", types.FieldDef{Type: types.FieldTypeChoice, Required: true, DisplayName: "Status", Values: activityStatuses, Default: types.Literal{Value: "Open"}}),
	field("performedBy", types.FieldDef{Type: types.FieldTypeString, Required: true, DisplayName: "Performed By", Validation: lengths(1, 255)}),
	field("performedDate", types.FieldDef{Type: types.FieldTypeDatetime, Required: true, DisplayName: "Performed Date", Default: NowISO}),
	field("duration", types.FieldDef{Type: types.FieldTypeNumber, DisplayName: "Duration (minutes)", Validation: atLeast(0)}),
	field("cost", types.FieldDef{Type: types.FieldTypeCurrency, DisplayName: "Cost", Validation: atLeast(0)}),
	field("notes", types.FieldDef{Type: types.FieldTypeText, DisplayName: "Notes", Validation: lengths(0, 2000)}),
	field("createdDate", types.FieldDef{Type: types.FieldTypeDatetime, Required: true, DisplayName: "Created Date", Default: NowISO}),
	field("modifiedDate", types.FieldDef{Type: types.FieldTypeDatetime, DisplayName: "Modified Date"}),
)

// Triage is the schema of the phone intake / triage form.
var Triage = types.MustEntitySchema(EntityTriage,
	field("emergencyType", types.FieldDef{Type: types.FieldTypeChoice, Required: true, DisplayName: "Emergency Type", Values: serviceTypes}),
	field("callerName", types.FieldDef{Type: types.FieldTypeString, Required: true, DisplayName: "Caller Name", Validation: lengths(1, 255)}),
	field("mobileNumber", types.FieldDef{
		Type:        types.FieldTypeString,
		Required:    true,
		DisplayName: "Mobile Number",
		Validation:  &types.Constraints{MinLength: types.Int(7), Pattern: phonePattern},
	}),
	field("connectionType", types.FieldDef{Type: types.FieldTypeChoice, DisplayName: "Connection Type", Values: connectionTypes}),
	field("vehicleRego", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Vehicle Registration", Validation: lengths(0, 20)}),
	field("emailAddress", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Email Address", Validation: email()}),
	field("contactNumber", types.FieldDef{Type: types.FieldTypeString, DisplayName: "Contact Number", Validation: phone()}),
	field("consent", types.FieldDef{Type: types.FieldTypeChoice, DisplayName: "Consent", Values: consentValues}),
	field("dncPhone", types.FieldDef{Type: types.FieldTypeString, DisplayName: "DNC Phone", Validation: phone()}),
	field("dncReason", types.FieldDef{Type: types.FieldTypeChoice, DisplayName: "DNC Reason", Values: dncReasons}),
	field("submittedBy", types.FieldDef{Type: types.FieldTypeString, Required: true, DisplayName: "Submitted By"}),
	field("submittedAt", types.FieldDef{Type: types.FieldTypeDatetime, Required: true, DisplayName: "Submitted At", Default: NowISO}),
)

// SharePointMappings returns the SharePoint list column tables, external
// name to internal name, in registration order. The activities table maps
// both JobID and JobReference to jobId; JobID is registered first and is
// the name written back.
func SharePointMappings() Mappings {
	return Mappings{
		EntityJobs: {
			{External: "ID", Internal: "id"},
			{External: "Title", Internal: "title"},
			{External: "Status", Internal: "status"},
			{External: "Priority", Internal: "priority"},
			{External: "Customer", Internal: "customer"},
			{External: "CustomerPhone", Internal: "customerPhone"},
			{External: "CustomerEmail", Internal: "customerEmail"},
			{External: "Supplier", Internal: "supplier"},
			{External: "SupplierPhone", Internal: "supplierPhone"},
			{External: "Location", Internal: "location"},
			{External: "VehicleRego", Internal: "vehicleRego"},
			{External: "JobType", Internal: "jobType"},
			{External: "Created", Internal: "createdDate"},
			{External: "Modified", Internal: "modifiedDate"},
			{External: "Author", Internal: "createdBy"},
			{External: "Editor", Internal: "modifiedBy"},
			{External: "Cost", Internal: "cost"},
			{External: "Description", Internal: "description"},
			{External: "Notes", Internal: "notes"},
		},
		EntityActivities: {
			{External: "ID", Internal: "id"},
			{External: "JobID", Internal: "jobId"},
			{External: "JobReference", Internal: "jobId"},
			{External: "ActivityType", Internal: "type"},
			{External: "Status", Internal: "status"},
			{External: "PerformedBy", Internal: "performedBy"},
			{External: "When", Internal: "performedDate"},
			{External: "Duration", Internal: "duration"},
			{External: "Cost", Internal: "cost"},
			{External: "Notes", Internal: "notes"},
			{External: "Created", Internal: "createdDate"},
			{External: "Modified", Internal: "modifiedDate"},
		},
	}
}
