package faq

import (
	"regexp"
	"strings"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/constant"
)

func rx(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

var sundayLunchRE = rx(`sonntag.*(mittag|lunch|12|13|14)`)

// kitchenHours answers the opening-hours rule. Sunday-lunch questions get the
// short lunch window, everything else the full kitchen schedule.
func kitchenHours(input string) string {
	if sundayLunchRE.MatchString(input) {
		return "Sonntag Mittag geöffnet: 12:00–14:00 (letzte Küchenbestellung 13:50)."
	}
	return strings.Join([]string{
		"Küchenzeiten:",
		"Dienstag: geschlossen",
		"Mi–Mo: 17:30–21:30 (letzte Küchenbestellung 21:15)",
		"Sonntag (Mittag): 12:00–14:00 (letzte Küchenbestellung 13:50)",
	}, "\n")
}

// rules is the canonical rule set. Order is priority: the first satisfied rule
// wins, so giftcards beats payments for a message mentioning both.
func rules() []Rule {
	return []Rule{
		// Reservations & bookings
		{
			ID:       "cancel-policy",
			Patterns: []*regexp.Regexp{rx(`cancel|storn|absag`)},
			Answer:   Static("Stornierungen sind bis 1 Stunde vor Öffnung möglich. Für Gruppen ab 10 Personen fällt bei Nichterscheinen oder Reduzierung €10 pro Person an."),
		},
		{
			ID:       "walk-in",
			Patterns: []*regexp.Regexp{rx(`walk.?in|spontan|ohne reserv|vorbei kommen|einfach kommen`)},
			Answer:   Static("Für Walk-ins halten wir keine Tische frei."),
		},
		{
			ID:       "deposit",
			Patterns: []*regexp.Regexp{rx(`anzahl|deposit|kaution|kreditkarte|sicherheitsleistung`)},
			Answer:   Static("Nur für Gruppen ab 10 Personen benötigen wir eine Kreditkarten-Sicherung."),
		},

		// Menu & food
		{
			ID:       "menu-general",
			Patterns: []*regexp.Regexp{rx(`menü|karte|speisekarte|gerichte|essen`)},
			Answer:   Static("Ich habe keinen Einblick in die tagesaktuelle Karte. Gern der Online-Menülink: " + constant.MenuLink),
		},
		{
			ID:       "dietary",
			Patterns: []*regexp.Regexp{rx(`vegan|vegetar|gluten|halal|laktos|allerg`)},
			Answer:   Static("Vegetarische, vegane und glutenfreie Optionen sind verfügbar. Hier ist die Karte: " + constant.MenuLink),
		},
		{
			ID:       "kids",
			Patterns: []*regexp.Regexp{rx(`kinder|kindermen|kids`)},
			Answer:   Static("Ja, es gibt Kindermenüs: vegane Nuggets mit Pommes, vegane Bratnudeln mit Gemüse, Pommes mit Ketchup sowie kleine Ente süß-sauer mit Reis."),
		},
		{
			ID:       "bring-own",
			Patterns: []*regexp.Regexp{rx(`eigen(es|e)|mitbringen|eigene(n)? (kuchen|torte|speisen|getränk)`)},
			Answer:   Static("Nur nach vorheriger Absprache. Soll ich dich direkt mit dem Restaurant verbinden?"),
		},
		{
			ID:       "xmas-hours",
			Patterns: []*regexp.Regexp{rx(`weihnacht`)},
			Answer:   Static("An beiden Weihnachtsfeiertagen geöffnet: 12:00–14:30 und 17:30–21:30."),
		},

		// Location & accessibility
		{
			ID:       "maps",
			Patterns: []*regexp.Regexp{rx(`wo seid|adresse|wie (komm|finde)|navigat|karte google`)},
			Answer:   Static("Hier ist der Google-Maps-Link: " + constant.MapsLink),
		},
		{
			ID:       "parking",
			Patterns: []*regexp.Regexp{rx(`park(en|platz)|parkmöglichkeit`)},
			Answer:   Static("Kostenlose Parkplätze sind direkt vor dem Restaurant oder in der Nähe verfügbar."),
		},
		{
			ID:       "wheelchair",
			Patterns: []*regexp.Regexp{rx(`rollstuhl|barrierefrei|behindertengerecht|behinderten WC|barriere`)},
			Answer:   Static("Leider nein – das Restaurant ist nicht rollstuhlgerecht und es gibt keine barrierefreie Toilette."),
		},
		{
			ID:       "public-transport",
			Patterns: []*regexp.Regexp{rx(`bus|bahn|öffentliche(n)? verkehr|ÖPNV|zug`)},
			Answer:   Static("Ja, der Sprockhövel Busbahnhof ist in der Nähe."),
		},

		// Other
		{
			ID:       "pets",
			Patterns: []*regexp.Regexp{rx(`hund|haustier|tier|pet`)},
			Answer:   Static("Haustiere sind willkommen – wir servieren frisches Wasser und einen Keks."),
		},
		{
			ID:       "giftcards",
			Patterns: []*regexp.Regexp{rx(`gutschein|gift ?card`)},
			Answer:   Static("Ja, Gutscheine gibt es vor Ort oder online. Link: " + constant.VoucherLink),
		},
		{
			ID:       "amenities",
			Patterns: []*regexp.Regexp{rx(`kinderstuhl|hochstuhl|terrasse|außen|draussen|außensitz`)},
			Answer:   Static("Ja – es gibt Hochstühle und eine Terrasse."),
		},
		{
			ID:       "contact",
			Patterns: []*regexp.Regexp{rx(`kontakt|erreichen|frage(n)? stellen|email|mail`)},
			Answer:   Static("Am besten per E-Mail an " + constant.RestaurantEmail + "."),
		},
		{
			ID:       "email-confirm",
			Patterns: []*regexp.Regexp{rx(`bestätig.*(mail|e-?mail)|reservierungsbestät`)},
			Answer:   Static("Eine E-Mail-Bestätigung gibt es nur bei Online-Reservierung. Am Telefon senden wir die Bestätigung per WhatsApp."),
		},
		{
			ID:       "catering",
			Patterns: []*regexp.Regexp{rx(`cater|lieferservice|veranstaltung|feier`)},
			Answer:   Static("Ja, Catering ab 15 Personen im Ennepe-Ruhr-Kreis. Bitte Details per E-Mail an " + constant.RestaurantEmail + " senden."),
		},
		{
			ID:       "outdoor",
			Patterns: []*regexp.Regexp{rx(`außen|terrasse|draußen|biergarten`)},
			Answer:   Static("Ja, wir haben eine Terrasse."),
		},
		{
			ID:       "payments",
			Patterns: []*regexp.Regexp{rx(`karte|kreditkarte|ec|mastercard|visa|apple|google pay|paypal`)},
			Answer:   Static("Wir akzeptieren EC, Visa, American Express, Mastercard, Apple Pay, Google Pay & PayPal."),
		},
		{
			ID:       "ev-charging",
			Patterns: []*regexp.Regexp{rx(`lade(gerät|station)|elektro(auto|fahrzeug)`)},
			Answer:   Static("Ladestationen sind derzeit nicht verfügbar."),
		},
		{
			ID:       "cooking-class",
			Patterns: []*regexp.Regexp{rx(`koch(kurs|schule)`)},
			Answer:   Static("Dieses Jahr finden keine Kochkurse statt."),
		},
		{
			ID:       "capacity",
			Patterns: []*regexp.Regexp{rx(`wie viele gäste|kapazität|plätze|personen`)},
			Answer:   Static("Bis zu 80 Sitzplätze im Restaurant. Private Veranstaltungen bis 36 Personen in einem separaten Raum."),
		},
		{
			ID:       "takeaway",
			Patterns: []*regexp.Regexp{rx(`take.?away|mitnehmen|to go|abholen|online bestell`)},
			Answer:   Static("Ja, alle Gerichte gibt es auch zum Mitnehmen (ökologisch verpackt). Online-Bestellung zu bestimmten Zeiten, telefonische Bestellungen während der Öffnungszeiten. Soll ich dich verbinden?"),
		},
		{
			ID:       "wifi",
			Patterns: []*regexp.Regexp{rx(`wifi|wlan|internet`)},
			Answer:   Static("Ja, es gibt kostenloses WLAN."),
		},

		// Kitchen opening hours, incl. Sunday lunch
		{
			ID:       "hours",
			Patterns: []*regexp.Regexp{rx(`öffnungszeit|wann.*offen|wann.*geöffnet|lunch|mittag|abend|dinner|küchenzeit`)},
			Answer:   Computed(kitchenHours),
		},
	}
}
