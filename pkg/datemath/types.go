package datemath

import "time"

// ISOLayout is the calendar date layout used on every boundary.
const ISOLayout = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"ponedjeljak": time.Monday,
	"utorak":      time.Tuesday,
	"srijeda":     time.Wednesday,
	"srijedu":     time.Wednesday,
	"cetvrtak":    time.Thursday,
	"petak":       time.Friday,
	"subota":      time.Saturday,
	"subotu":      time.Saturday,
	"nedjelja":    time.Sunday,
	"nedjelju":    time.Sunday,
}
