package sentiment

// The polarity lexicon. Valences run -4..+4 in the VADER convention;
// the per-entry sum is squashed to [-1,1] by the same normalization
// curve VADER uses.
var lexicon = map[string]float64{
	// positive
	"accomplished": 1.9,
	"amazing":      2.8,
	"appreciate":   1.8,
	"awesome":      3.1,
	"balanced":     1.2,
	"beautiful":    2.6,
	"best":         3.2,
	"better":       1.9,
	"blessed":      2.7,
	"calm":         1.3,
	"cheerful":     2.5,
	"confident":    2.2,
	"content":      1.6,
	"delighted":    2.9,
	"elated":       3.0,
	"encouraged":   1.9,
	"energetic":    2.0,
	"energized":    2.1,
	"enjoy":        2.2,
	"enjoyed":      2.3,
	"excellent":    3.1,
	"excited":      2.4,
	"fantastic":    3.0,
	"fortunate":    2.1,
	"fun":          2.3,
	"glad":         2.0,
	"good":         1.9,
	"grateful":     2.4,
	"great":        2.8,
	"happy":        2.7,
	"hopeful":      1.8,
	"joy":          2.8,
	"joyful":       2.9,
	"love":         3.2,
	"loved":        2.9,
	"motivated":    2.0,
	"optimistic":   1.9,
	"peaceful":     1.9,
	"pleasant":     1.8,
	"proud":        2.2,
	"refreshed":    1.9,
	"relaxed":      1.7,
	"relieved":     1.6,
	"rested":       1.5,
	"satisfied":    1.9,
	"strong":       1.6,
	"thankful":     2.3,
	"thrilled":     3.1,
	"wonderful":    2.9,

	// negative
	"afraid":       -2.2,
	"angry":        -2.7,
	"annoyed":      -1.8,
	"anxious":      -2.1,
	"awful":        -3.0,
	"bad":          -2.5,
	"burnout":      -2.6,
	"concerned":    -1.3,
	"depressed":    -3.1,
	"difficult":    -1.6,
	"disappointed": -2.2,
	"down":         -1.6,
	"drained":      -2.0,
	"dread":        -2.6,
	"empty":        -2.0,
	"exhausted":    -2.3,
	"fearful":      -2.3,
	"frustrated":   -2.4,
	"furious":      -3.2,
	"hard":         -1.1,
	"hopeless":     -3.0,
	"horrible":     -3.1,
	"hurt":         -2.2,
	"irritated":    -2.0,
	"lonely":       -2.4,
	"lost":         -1.7,
	"mad":          -2.4,
	"miserable":    -3.0,
	"nervous":      -1.9,
	"overwhelmed":  -2.4,
	"panic":        -2.8,
	"sad":          -2.5,
	"scared":       -2.4,
	"stressed":     -2.3,
	"struggling":   -2.1,
	"terrible":     -3.0,
	"terrified":    -3.2,
	"tired":        -1.5,
	"uneasy":       -1.5,
	"unhappy":      -2.4,
	"upset":        -2.2,
	"worried":      -2.0,
	"worse":        -2.3,
	"worst":        -3.3,
	"worthless":    -3.1,
}

// Negation within the preceding window flips and dampens a hit, per the
// VADER constant.
const negationDamp = -0.74

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"dont": true, "don't": true, "didnt": true, "didn't": true,
	"cant": true, "can't": true, "cannot": true, "wont": true, "won't": true,
	"isnt": true, "isn't": true, "wasnt": true, "wasn't": true,
	"hardly": true, "barely": true, "rarely": true,
}

// Boosters scale the following hit up or down.
const boosterStep = 0.293

var boosters = map[string]float64{
	"very": boosterStep, "really": boosterStep, "extremely": boosterStep,
	"incredibly": boosterStep, "absolutely": boosterStep, "so": boosterStep,
	"totally": boosterStep, "completely": boosterStep, "deeply": boosterStep,
	"slightly": -boosterStep, "somewhat": -boosterStep, "kinda": -boosterStep,
	"little": -boosterStep, "bit": -boosterStep,
}

// emotionKeywords tags entries with emotion categories via lexical
// matching, as the original journaling agent did.
var emotionKeywords = map[string][]string{
	"anxiety":    {"anxious", "worried", "nervous", "overwhelmed", "panic", "uneasy", "dread"},
	"depression": {"sad", "depressed", "down", "hopeless", "empty", "lonely", "miserable", "worthless"},
	"anger":      {"angry", "frustrated", "irritated", "mad", "furious", "annoyed"},
	"joy":        {"happy", "excited", "joyful", "cheerful", "elated", "thrilled", "delighted", "fun"},
	"fear":       {"scared", "afraid", "terrified", "fearful", "concerned"},
	"gratitude":  {"grateful", "thankful", "appreciate", "blessed", "fortunate"},
	"stress":     {"stressed", "burnout", "exhausted", "drained", "pressure", "deadline"},
}

// emotionOrder keeps tag output deterministic regardless of map
// iteration order.
var emotionOrder = []string{"anxiety", "depression", "anger", "joy", "fear", "gratitude", "stress"}
