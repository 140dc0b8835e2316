package grammar

// Family names, in priority order.
const (
	FamilyPendingControl   = "pending_control"
	FamilyHistoryControl   = "history_control"
	FamilySessionControl   = "session_control"
	FamilyTaskModal        = "task_modal"
	FamilyDocument         = "document"
	FamilyNormativeProfile = "normative_profile"
	FamilyStandardPlan     = "standard_plan"
	FamilyNormativeExtend  = "normative_extend"
	FamilyBatch            = "batch_operations"
	FamilyMoveStart        = "move_start"
	FamilyShiftAll         = "shift_all"
	FamilyShift            = "shift"
	FamilyDistributeChain  = "distribute_chain"
)

// Regex fragments over normalized text.
const (
	aliasExpr     = `[a-z]{1,4} ?\d{1,4}`
	aliasListExpr = aliasExpr + `(?:(?:, ?| i )` + aliasExpr + `)*`
	unitExpr      = `(?:dana|dane|dan|tjedana|tjedna|tjedne|tjedan)`
	directionExpr = `(?:naprijed|unaprijed|kasnije|nazad|unazad|natrag|ranije)`
	scopeExpr     = `(?:sve(?: pozicije| stavke)?|` + aliasListExpr + `)`
	isoDateExpr   = `\d{4}-\d{2}-\d{2}`
	dottedExpr    = `\d{1,2}\.\s?\d{1,2}\.\s?\d{4}\.?`
)

// CustomProfileID marks a profile spoken as explicit offsets.
const CustomProfileID = "custom"

// ScheduleTarget is the analyze target for the schedule itself.
const ScheduleTarget = "schedule"

// DefaultProfiles are used when no profiles are configured.
func DefaultProfiles() []Profile {
	return []Profile{
		{ID: "standardni", Names: []string{"standardni", "standardno", "standard"}, StartOffsetDays: 0, EndOffsetDays: 3},
		{ID: "produzeni", Names: []string{"produzeni", "produzeno", "prosireni"}, StartOffsetDays: 0, EndOffsetDays: 7},
		{ID: "skraceni", Names: []string{"skraceni", "skraceno", "kratki"}, StartOffsetDays: 0, EndOffsetDays: -2},
		{ID: "rani_pocetak", Names: []string{"rani pocetak", "raniji pocetak", "rani"}, StartOffsetDays: -2, EndOffsetDays: 0},
	}
}

// documentNames maps spoken document names to the fixed document vocabulary.
var documentNames = map[string]string{
	"ugovor":                 "ugovor",
	"ugovora":                "ugovor",
	"troskovnik":             "troskovnik",
	"troskovnika":            "troskovnik",
	"dinamicki plan":         "dinamicki-plan",
	"dinamicki-plan":         "dinamicki-plan",
	"dinamickog plana":       "dinamicki-plan",
	"tehnicki opis":          "tehnicki-opis",
	"tehnicki-opis":          "tehnicki-opis",
	"tehnickog opisa":        "tehnicki-opis",
	"dozvola":                "dozvola",
	"dozvolu":                "dozvola",
	"dozvole":                "dozvola",
	"gradevinska dozvola":    "dozvola",
	"gradevinsku dozvolu":    "dozvola",
	"gradevinske dozvole":    "dozvola",
	"normativi":              "normativi",
	"normative":              "normativi",
	"normativa":              "normativi",
	"tablicu normativa":      "normativi",
	"tablica normativa":      "normativi",
	"tehnicku dokumentaciju": "tehnicki-opis",
}

// scheduleNames are analyze targets that mean the schedule itself.
var scheduleNames = map[string]bool{
	"plan":           true,
	"raspored":       true,
	"gantogram":      true,
	"dinamiku":       true,
	"terminski plan": true,
}

// batchSeparators are the only words allowed between batch clauses.
var batchSeparators = map[string]bool{
	"i":         true,
	"te":        true,
	"pa":        true,
	"pomakni":   true,
	"pomaknite": true,
	"odgodi":    true,
	"odgodite":  true,
}
