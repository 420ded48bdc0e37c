package validators

import "strings"

var cpfPunctuation = strings.NewReplacer(".", "", "-", "", " ", "")

// NormalizeCPF strips the usual mask so "123.456.789-00" and "12345678900"
// identify the same customer.
func NormalizeCPF(cpf string) string {
	return cpfPunctuation.Replace(strings.TrimSpace(cpf))
}
