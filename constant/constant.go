package constant

// Bot identity and business facts used to build the system prompt.
const (
	BotName  = "Sukhothai Assist"
	BotStyle = "klar, freundlich, keine Floskeln, kein Gendern"

	RestaurantAddress = "Bochumer Straße 15, 45549 Sprockhövel"
	RestaurantEmail   = "info@sukhothai-sprockhoevel.de"

	MenuLink    = "https://www.sukhothai-sprockhoevel.de/karte/"
	MapsLink    = "https://maps.app.goo.gl/AnSHY9QvbdWJpZYeA"
	VoucherLink = "https://www.yovite.com/Restaurant-Gutschein-R-84849891.html?REF=REST"
)

// OpeningHours is rendered into the system prompt as-is.
const OpeningHours = `Mo 17:30-23:00, Di 17:30-23:00, Mi 17:30-23:00, Do 17:30-23:00, Fr 17:30-23:00, Sa 17:30-23:00, So 12:00-14:30 und 17:30-23:00`

// Canned engine degradations. The engine never surfaces provider errors to the
// chat caller; it answers with one of these instead.
const (
	// DegradedAnswer is returned after the retry budget and the fallback
	// model are both exhausted.
	DegradedAnswer = "Entschuldige, das konnte ich gerade nicht beantworten. Magst du die Frage anders formulieren?"

	// UnsureAnswer is returned on non-retryable provider errors.
	UnsureAnswer = "Das kann ich leider nicht sicher beantworten. Am besten direkt per E-Mail an info@sukhothai-sprockhoevel.de."
)

// Reservation intake texts.
const (
	ReserveMissingFields = "Felder fehlen"
	ReserveAccepted      = "Erfasst. Wir melden uns."
)

const ChatMissingMessage = "message fehlt"

// StatusProbePrompt is the trivial prompt used by GET /status to confirm the
// primary model is reachable.
const StatusProbePrompt = "Sag nur deinen Modellnamen."
