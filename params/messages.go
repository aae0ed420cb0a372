// SPDX-License-Identifier: MIT

package params

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Advisory message keys. The English text is the key itself.
const (
	msgTablesFromPeoplePerTable = "Number of tables was not specified; calculated as %d based on the people-per-table input."
	msgTablesFromDensity        = "Number of tables was not specified; calculated as %d to target ~%d people per table."
	msgPeoplePerTableRaised     = "The specified %d people per table is not enough for all %d rotating attendees; adjusted upwards to %d."
	msgPeoplePerTableDerived    = "People per table was not specified; calculated as %d to fit all attendees."
	msgRoundsDerived            = "Number of rounds was not specified; calculated as %d to match the number of sponsors."
	msgSponsorCoverage          = "Sponsors will have a high unmet count: each sponsor meets at most ~%d of the %d rotating attendees. Consider increasing the number of rounds for better coverage."
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		msgTablesFromPeoplePerTable: "Die Anzahl der Tische wurde nicht angegeben; anhand der Personen pro Tisch auf %d berechnet.",
		msgTablesFromDensity:        "Die Anzahl der Tische wurde nicht angegeben; auf %d berechnet, um etwa %d Personen pro Tisch zu erreichen.",
		msgPeoplePerTableRaised:     "Die angegebenen %d Personen pro Tisch reichen nicht für alle %d rotierenden Teilnehmer; auf %d erhöht.",
		msgPeoplePerTableDerived:    "Die Personen pro Tisch wurden nicht angegeben; auf %d berechnet, damit alle Teilnehmer Platz finden.",
		msgRoundsDerived:            "Die Anzahl der Runden wurde nicht angegeben; auf %d gesetzt, passend zur Anzahl der Sponsoren.",
		msgSponsorCoverage:          "Sponsoren verpassen viele Teilnehmer: Jeder Sponsor trifft höchstens ~%d der %d rotierenden Teilnehmer. Mehr Runden verbessern die Abdeckung.",
	},
}

// messages holds the advisory translations. Tags without an entry print the
// English key with their own number formatting.
var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, set := range translations {
		for key, msg := range set {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	return b
}

// Languages lists the tags with translated advisories.
func Languages() []language.Tag {
	return messages.Languages()
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
