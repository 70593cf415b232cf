package moneyfmt

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Суммы всегда в евро: API опрашивается с vs_currency=eur (см. конфиг).
const currencyPrefix = "€ "

// Разделители тысяч для значений без сокращения
var printer = message.NewPrinter(language.English)

// FormatAmount — человекочитаемая сумма: миллиарды и миллионы
// сокращаются до "Mrd."/"Mio." с двумя знаками, меньшие значения
// выводятся целиком с разделителями тысяч. nil означает отсутствие
// данных и отображается как "N/A".
func FormatAmount(v *float64) string {
	if v == nil {
		return "N/A"
	}
	value := *v
	switch {
	case value >= 1e9:
		return fmt.Sprintf("%s%.2f Mrd.", currencyPrefix, value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%s%.2f Mio.", currencyPrefix, value/1e6)
	default:
		return printer.Sprintf("%s%.2f", currencyPrefix, value)
	}
}

// FormatPercent — процент с заданным числом знаков: "58.3 %".
func FormatPercent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f %%", decimals, v)
}

// FormatChange — процентное изменение со знаком: "+1.25 %" / "-2.50 %".
func FormatChange(v float64) string {
	return fmt.Sprintf("%+.2f %%", v)
}
