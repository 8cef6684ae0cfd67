// Package main содержит точку входа клиентского CLI-приложения recipes.
//
// Пакет запускает консольный клиент и передаёт в CLI-слой версию и дату сборки.
package main

import "github.com/IvanChernomyrdin/go-recipes/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
