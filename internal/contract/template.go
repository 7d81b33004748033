package contract

import (
	"strings"
	"text/template"
	"time"

	"github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
)

// Standardized French acknowledgment-of-debt. Less polished than the
// generated text but contractually equivalent.
const fallbackText = `RECONNAISSANCE DE DETTE (Standardisé)

ENTRE LES SOUSSIGNÉS :

LE PRÊTEUR :
{{.LenderName}}

ET

L'EMPRUNTEUR :
{{.BorrowerName}}

IL A ÉTÉ CONVENU ET ARRÊTÉ CE QUI SUIT :

1. OBJET DU PRÊT
Le Prêteur consent ce jour à l'Emprunteur un prêt d'un montant principal de {{.Amount}} {{.Currency}}.
L'Emprunteur reconnaît avoir reçu cette somme ce jour par virement ou remise d'espèces.

2. REMBOURSEMENT ET DEVISE
L'Emprunteur s'engage irrévocablement à rembourser la totalité de la somme susmentionnée au plus tard le {{.RepaymentDate}}.
Il est expressément convenu que bien que le prêt soit libellé en {{.Currency}}, le remboursement devra être effectué en EUROS (€) selon la contre-valeur au jour du paiement.

ARTICLE : RETARD DE PAIEMENT
À défaut de remboursement intégral au {{.RepaymentDate}}, le capital restant dû produira des intérêts de retard au taux annuel de {{.Rate}} %. Ces intérêts courent de plein droit dès le lendemain de l'échéance. Le montant total des frais et intérêts ne pourra excéder le taux d'usure légal en vigueur.

3. LOI APPLICABLE ET JURIDICTION
Le présent contrat est soumis au droit en vigueur dans le pays de signature. En cas de litige, les tribunaux compétents seront ceux du domicile du Prêteur.

Fait à {{.City}}, le {{.SignedDate}} en deux exemplaires originaux.`

var fallbackTmpl = template.Must(template.New("contract").Parse(fallbackText))

type fallbackData struct {
	LenderName    string
	BorrowerName  string
	Amount        float64
	Currency      string
	RepaymentDate string
	Rate          float64
	City          string
	SignedDate    string
}

// RenderFallback produces the deterministic local contract text.
func RenderFallback(l *loan.Loan) string {
	signed := l.CreatedAt
	if l.SignedDate != nil {
		signed = *l.SignedDate
	}
	if signed.IsZero() {
		signed = time.Now().UTC()
	}
	city := l.City
	if city == "" {
		city = "___"
	}

	data := fallbackData{
		LenderName:    l.LenderName,
		BorrowerName:  l.BorrowerName,
		Amount:        l.Amount,
		Currency:      l.Currency,
		RepaymentDate: frenchDate(l.RepaymentDate),
		Rate:          l.LateInterestRate,
		City:          city,
		SignedDate:    frenchDate(signed),
	}

	var b strings.Builder
	// The template is parsed at init and the data struct is flat, so this
	// cannot fail at runtime.
	_ = fallbackTmpl.Execute(&b, data)
	return b.String()
}

func frenchDate(t time.Time) string {
	if t.IsZero() {
		return "___"
	}
	return t.Format("02/01/2006")
}
