package fieldmap

// Object keys used in the config documents.
const (
	ObjectLead        = "lead"
	ObjectOpportunity = "opportunity"
	ObjectTask        = "task"
)

// Value categories in stages.yaml.
const (
	CategoryLeadStatuses      = "lead_statuses"
	CategoryOpportunityStages = "opportunity_stages"
	CategoryTaskStatuses      = "task_statuses"
	CategoryTaskPriorities    = "task_priorities"
)

var defaultFields = map[string]map[string]string{
	ObjectLead: {
		"email":       "Email",
		"first_name":  "FirstName",
		"last_name":   "LastName",
		"company":     "Company",
		"title":       "Title",
		"website":     "Website",
		"status":      "Status",
		"source":      "LeadSource",
		"description": "Description",
	},
	ObjectOpportunity: {
		"name":        "Name",
		"stage":       "StageName",
		"close_date":  "CloseDate",
		"amount":      "Amount",
		"account_id":  "AccountId",
		"next_step":   "NextStep",
		"probability": "Probability",
		"description": "Description",
	},
	ObjectTask: {
		"subject":     "Subject",
		"due_date":    "ActivityDate",
		"status":      "Status",
		"priority":    "Priority",
		"what_id":     "WhatId",
		"who_id":      "WhoId",
		"description": "Description",
	},
}

var defaultRequired = map[string][]string{
	ObjectLead:        {"LastName", "Company", "Status"},
	ObjectOpportunity: {"Name", "StageName", "CloseDate"},
	ObjectTask:        {"Subject"},
}

// caseInsensitive lists the value categories whose logical labels are matched
// regardless of case. Every other category matches exactly.
var caseInsensitive = map[string]bool{
	CategoryTaskPriorities: true,
}
