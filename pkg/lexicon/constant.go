package lexicon

// Cardinal number words in folded (diacritic-free) form.
var cardinals = map[string]int{
	"nula":       0,
	"jedan":      1,
	"jedna":      1,
	"jedno":      1,
	"jednog":     1,
	"jednu":      1,
	"dva":        2,
	"dvije":      2,
	"dvaju":      2,
	"tri":        3,
	"triju":      3,
	"cetiri":     4,
	"pet":        5,
	"sest":       6,
	"sedam":      7,
	"osam":       8,
	"devet":      9,
	"deset":      10,
	"jedanaest":  11,
	"dvanaest":   12,
	"trinaest":   13,
	"cetrnaest":  14,
	"petnaest":   15,
	"sesnaest":   16,
	"sedamnaest": 17,
	"osamnaest":  18,
	"devetnaest": 19,
	"dvadeset":   20,
	"trideset":   30,
}

// ordinalBases holds masculine nominative ordinals; case and gender forms are derived in init.
var ordinalBases = map[string]int{
	"prvi":        1,
	"drugi":       2,
	"treci":       3,
	"cetvrti":     4,
	"peti":        5,
	"sesti":       6,
	"sedmi":       7,
	"osmi":        8,
	"deveti":      9,
	"deseti":      10,
	"jedanaesti":  11,
	"dvanaesti":   12,
	"trinaesti":   13,
	"cetrnaesti":  14,
	"petnaesti":   15,
	"sesnaesti":   16,
	"sedamnaesti": 17,
	"osamnaesti":  18,
	"devetnaesti": 19,
	"dvadeseti":   20,
	"trideseti":   30,
}

var ordinalSuffixes = []string{"a", "o", "e", "u", "og", "oga", "eg", "ega", "om", "em"}

// tens that may prefix a unit word to form a compound (dvadeset jedan, trideset prvi).
var compoundTens = map[string]int{
	"dvadeset": 20,
	"trideset": 30,
}

// Month names, nominative and genitive.
var monthNames = map[string]int{
	"sijecanj":  1,
	"sijecnja":  1,
	"veljaca":   2,
	"veljace":   2,
	"ozujak":    3,
	"ozujka":    3,
	"travanj":   4,
	"travnja":   4,
	"svibanj":   5,
	"svibnja":   5,
	"lipanj":    6,
	"lipnja":    6,
	"srpanj":    7,
	"srpnja":    7,
	"kolovoz":   8,
	"kolovoza":  8,
	"rujan":     9,
	"rujna":     9,
	"listopad":  10,
	"listopada": 10,
	"studeni":   11,
	"studenog":  11,
	"studenoga": 11,
	"prosinac":  12,
	"prosinca":  12,
}

var unitDays = map[string]int{
	"dan":     1,
	"dana":    1,
	"dane":    1,
	"tjedan":  7,
	"tjedna":  7,
	"tjedana": 7,
	"tjedne":  7,
}

var directions = map[string]int{
	"naprijed":  1,
	"unaprijed": 1,
	"kasnije":   1,
	"nazad":     -1,
	"unazad":    -1,
	"natrag":    -1,
	"ranije":    -1,
}

var negativeSigns = map[string]bool{
	"minus": true,
	"minuz": true,
	"-":     true,
}

var positiveSigns = map[string]bool{
	"plus": true,
	"+":    true,
}

// Filler phrases stripped from both ends of an utterance, longest first.
var fillers = []string{
	"molim vas",
	"molim te",
	"mozete li",
	"mozes li",
	"molim",
	"hvala",
	"please",
	"odmah",
	"ajde",
	"sada",
	"hej",
	"daj",
}

const (
	// maxWordNumber is the largest value reachable through number words.
	maxWordNumber = 31
	// maxDigitNumber bounds digit strings so day arithmetic cannot overflow.
	maxDigitNumber = 100000
)
