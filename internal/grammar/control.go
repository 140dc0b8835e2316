package grammar

import (
	"regexp"
	"strings"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/pkg/lexicon"
)

var (
	confirmPattern = regexp.MustCompile(`^(?:potvrdi|potvrdujem|potvrdi promjenu|potvrdi prijedlog|prihvati|prihvacam|moze|u redu|da|ok|okej|primijeni promjenu)$`)
	cancelPattern  = regexp.MustCompile(`^(?:odbaci|odbij|otkazi|ponisti|ne|nemoj|odbaci promjenu|odbaci prijedlog|otkazi promjenu|ponisti prijedlog)$`)

	undoPattern = regexp.MustCompile(`^(?:vrati|vrati natrag|vrati promjenu|vrati zadnju promjenu|korak natrag|ponisti zadnje|ponisti zadnju promjenu|undo)$`)
	redoPattern = regexp.MustCompile(`^(?:ponovi|ponovi promjenu|vrati naprijed|korak naprijed|redo)$`)

	exitFocusPattern = regexp.MustCompile(`^(?:izadi|izlaz|izadi iz fokusa|zatvori fokus|kraj fokusa|zavrsi fokus)$`)
	ttsReadPattern   = regexp.MustCompile(`^(?:procitaj|citaj|procitaj naglas|procitaj mi)(?: (?:plan|raspored|to|sve|naglas|stavke))?$`)

	appendPattern     = regexp.MustCompile(`^(?:upisi|zapisi|dodaj tekst|dodaj opis|dodaj u zadatak|dodaj u opis) (.+)$`)
	appendRawPattern  = regexp.MustCompile(`(?i)(?:upi[sš]i|zapi[sš]i|dodaj tekst|dodaj opis|dodaj u zadatak|dodaj u opis)[:,]?\s+(.+?)[\s.]*$`)
	addOpenPattern    = regexp.MustCompile(`^(?:dodaj|novi|nova|otvori|kreiraj)(?: novi| novu| nova)? (?:zadatak|stavku|stavka|poziciju|pozicija|task)$`)
	saveModalPattern  = regexp.MustCompile(`^(?:spremi|sacuvaj|pohrani)(?: zadatak| promjene| stavku)?$`)
	closeModalPattern = regexp.MustCompile(`^(?:odustani|zatvori prozor|zatvori formu|zatvori modal|zatvori zadatak)$`)

	openDocumentPattern    = regexp.MustCompile(`^(?:otvori|otvori mi|prikazi|pokazi|prikazi mi|pokazi mi) (?:dokument )?(.+?)(?:,? (?:na )?(?:stranic[aiu]|str\.?) (.+))?$`)
	analyzeDocumentPattern = regexp.MustCompile(`^(?:analiziraj|analiza|provjeri|pregledaj) (?:dokument )?(.+)$`)
)

func matchPendingControl(u utterance, _ Context) (command.Command, error) {
	switch {
	case confirmPattern.MatchString(u.text):
		return command.ConfirmPending{}, nil
	case cancelPattern.MatchString(u.text):
		return command.CancelPending{}, nil
	}
	return nil, nil
}

func matchHistoryControl(u utterance, _ Context) (command.Command, error) {
	switch {
	case undoPattern.MatchString(u.text):
		return command.Undo{}, nil
	case redoPattern.MatchString(u.text):
		return command.Redo{}, nil
	}
	return nil, nil
}

func matchSessionControl(u utterance, _ Context) (command.Command, error) {
	switch {
	case exitFocusPattern.MatchString(u.text):
		return command.ExitFocus{}, nil
	case ttsReadPattern.MatchString(u.text):
		return command.TtsRead{}, nil
	}
	return nil, nil
}

func matchTaskModal(u utterance, _ Context) (command.Command, error) {
	if appendPattern.MatchString(u.text) {
		// Keep the user's casing and diacritics for the appended text.
		if m := appendRawPattern.FindStringSubmatch(u.raw); m != nil {
			return command.AddTaskAppend{Text: strings.TrimSpace(m[1])}, nil
		}
		m := appendPattern.FindStringSubmatch(u.text)
		return command.AddTaskAppend{Text: m[1]}, nil
	}

	switch {
	case addOpenPattern.MatchString(u.text):
		return command.AddTaskOpen{}, nil
	case saveModalPattern.MatchString(u.text):
		return command.ModalSave{}, nil
	case closeModalPattern.MatchString(u.text):
		return command.ModalCancel{}, nil
	}
	return nil, nil
}

func matchDocument(u utterance, _ Context) (command.Command, error) {
	if m := openDocumentPattern.FindStringSubmatch(u.text); m != nil {
		name, ok := documentNames[m[1]]
		if !ok {
			return nil, nil
		}
		cmd := command.OpenDocument{Name: name}
		if m[2] != "" {
			page, ok := lexicon.Number(m[2])
			if !ok || page < 1 {
				return nil, ErrUnresolvedNumeral
			}
			cmd.Page = page
		}
		return cmd, nil
	}

	if m := analyzeDocumentPattern.FindStringSubmatch(u.text); m != nil {
		if scheduleNames[m[1]] {
			return command.AnalyzeDocument{Target: ScheduleTarget}, nil
		}
		if name, ok := documentNames[m[1]]; ok {
			return command.AnalyzeDocument{Target: name}, nil
		}
	}
	return nil, nil
}
