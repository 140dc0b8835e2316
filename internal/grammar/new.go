package grammar

import (
	"strings"

	"schedule-interpreter/pkg/lexicon"
)

// Parser turns utterances into commands. It holds no per-call state and is
// safe for concurrent use once built.
type Parser struct {
	profiles     []Profile
	profileNames map[string]Profile
	families     []family
}

// New builds a parser with the given normative profiles, or DefaultProfiles when none are given.
func New(profiles ...Profile) *Parser {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}

	p := &Parser{
		profiles:     profiles,
		profileNames: make(map[string]Profile),
	}
	for _, pr := range profiles {
		p.profileNames[lexicon.Normalize(pr.ID)] = pr
		p.profileNames[lexicon.Normalize(strings.ReplaceAll(pr.ID, "_", " "))] = pr
		for _, name := range pr.Names {
			p.profileNames[lexicon.Normalize(name)] = pr
		}
	}

	p.families = []family{
		{FamilyPendingControl, matchPendingControl},
		{FamilyHistoryControl, matchHistoryControl},
		{FamilySessionControl, matchSessionControl},
		{FamilyTaskModal, matchTaskModal},
		{FamilyDocument, matchDocument},
		{FamilyNormativeProfile, p.matchNormativeProfile},
		{FamilyStandardPlan, matchStandardPlan},
		{FamilyNormativeExtend, matchNormativeExtend},
		{FamilyBatch, matchBatch},
		{FamilyMoveStart, matchMoveStart},
		{FamilyShiftAll, matchShiftAll},
		{FamilyShift, matchShift},
		{FamilyDistributeChain, matchDistributeChain},
	}
	return p
}

// Profiles returns the configured normative profiles.
func (p *Parser) Profiles() []Profile {
	out := make([]Profile, len(p.profiles))
	copy(out, p.profiles)
	return out
}
