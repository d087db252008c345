// Package normalize maps the noisy column headers of ERP spreadsheet
// exports onto the canonical field names in internal/domain. Matching is
// case-, accent- and punctuation-insensitive; the synonym table below is
// configuration data, ordered so that the first match wins.
package normalize

import (
	"fmt"
	"strings"

	"riordino/internal/domain"
)

type synonymEntry struct {
	canonical string
	synonyms  []string
}

// Header variants observed across SAP Business One exports. Synonyms are
// compared through Name, so spelling out accented and spaced variants only
// serves readability here.
var synonymTable = []synonymEntry{
	{domain.FieldCustomerCode, []string{"codicecliente", "codiceclientefornitore", "cliente"}},
	{domain.FieldProductCode, []string{"codicearticolo", "articolo", "codprod", "codice"}},
	{domain.FieldProductDescription, []string{"descrizionearticolo", "descrizione", "descr"}},
	{domain.FieldQtyShippedPeriod, []string{"qtasped", "quantitàspedita", "qta sped", "spedite", "quantità spedita"}},
	{domain.FieldQtyOrderedPeriod, []string{"qtaord", "quantitàordinata", "ordinata", "ordinà"}},
	{domain.FieldQtyAlreadyOrdered, []string{
		"quantità ordinata fornitori",
		"quantità ordinata dai fornitori",
		"quantita ordinata fornitori",
		"quantita ordinata dai fornitori",
		"quantitàordinatafornitori",
		"quantitaordinatafornitori",
		"fornitoriordinati",
		"ordinatifornitori",
		"quantitaordinatadaifornitori",
	}},
	{domain.FieldQtyCommitted, []string{
		"quantità impegnata",
		"impegnata",
		"ordini clienti",
		"impegnato",
		"quantità ordinata clienti",
		"quantità ordinata dai clienti",
		"quantita ordinata clienti",
		"quantita ordinata dai clienti",
		"quantitàordinatadaiclienti",
		"quantitaordinatadaiclienti",
	}},
	{domain.FieldStockOnHandTotal, []string{"giactot", "giacenzatotale", "giacenza", "stock"}},
	{domain.FieldStockRC, []string{"giacrc", "rc"}},
	{domain.FieldStockDAP, []string{"giacds", "dap"}},
	{domain.FieldAvgSalesLast6Months, []string{"media6mesi", "media6mesivendite", "vendite6mesi"}},
	{domain.FieldSellingUnit, []string{"unitàdimisuradivendita", "unitadivendita", "unità"}},
	{domain.FieldPackSize, []string{"pezzicolloscotola", "pezzi collo/scatola", "pezzi collo", "pezzi per collo"}},
	{domain.FieldVendorName, []string{"fornitore", "nomefornitore", "vendor"}},
	{domain.FieldVendorCode, []string{"codicefornitore", "vendorcode"}},
	{domain.FieldLastPurchasePrice, []string{"ultimoprezzodacquisto", "ultimo prezzo d'acquisto", "ultimo prezzo acquisto"}},
	{domain.FieldLastPurchasePriceDate, []string{"ultimoprezzodacquistodata", "data ultimo prezzo acquisto"}},
}

var accentReplacer = strings.NewReplacer(
	"à", "a",
	"è", "e",
	"é", "e",
	"ì", "i",
	"ò", "o",
	"ù", "u",
)

// Name reduces a column header to its comparable form: lower case, the six
// common accented vowels folded, everything but ASCII letters and digits
// dropped.
func Name(s string) string {
	s = accentReplacer.Replace(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalFor returns the canonical field matching the header, or "".
func canonicalFor(header string) string {
	clean := Name(header)
	for _, entry := range synonymTable {
		for _, syn := range entry.synonyms {
			if clean == Name(syn) {
				return entry.canonical
			}
		}
	}
	return ""
}

// Renamed resolves a header row to its output names, in input order.
// Unrecognized headers keep their normalized (but uncanonicalized) form;
// repeated matches of the same canonical field get _2, _3, ... suffixes in
// encounter order. Renamed never fails.
func Renamed(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, header := range raw {
		name := canonicalFor(header)
		if name == "" {
			name = Name(header)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		out[i] = name
	}
	return out
}

// Columns maps each raw header to its resolved name. The rename itself is
// applied by the caller.
func Columns(raw []string) map[string]string {
	renamed := Renamed(raw)
	m := make(map[string]string, len(raw))
	for i, header := range raw {
		m[header] = renamed[i]
	}
	return m
}
