// Package reforms содержит статические данные реформ: таблицу
// спортивных зарплат и шаги пенсионной реформы. Данные неизменяемы,
// инициализируются один раз при старте процесса и отдаются как есть.
package reforms

// WageRow - строка таблицы минимальных/максимальных зарплат по лигам.
type WageRow struct {
	League  int     `json:"liga"`
	MinWage float64 `json:"min_mzda"`
	MaxWage float64 `json:"max_mzda"`
}

// PensionStep - пункт пенсионной реформы.
type PensionStep struct {
	Point       int    `json:"bod"`
	Description string `json:"opis"`
}

var sportWages = []WageRow{
	{League: 1, MinWage: 3500, MaxWage: 9000},
	{League: 2, MinWage: 2200, MaxWage: 5000},
	{League: 3, MinWage: 1500, MaxWage: 3200},
	{League: 4, MinWage: 900, MaxWage: 2000},
	{League: 5, MinWage: 600, MaxWage: 1200},
}

var pensionReform = []PensionStep{
	{Point: 1, Description: "Stabilizácia II. piliera s vyššou transparentnosťou"},
	{Point: 2, Description: "Automatický vstup mladých s možnosťou opt-out"},
	{Point: 3, Description: "Indexové fondy ako predvolená voľba"},
	{Point: 4, Description: "Motivačné príspevky pre dlhodobé sporenie"},
	{Point: 5, Description: "Daňové zvýhodnenie dobrovoľných príspevkov"},
	{Point: 6, Description: "Zavedenie dlhopisov pre infra projekty v dôchodkových fondoch"},
	{Point: 7, Description: "Spravodlivejšie valorizácie pre nízkopríjmové skupiny"},
	{Point: 8, Description: "Silnejšie zásluhové prvky – prepojenie na celoživotný príjem"},
	{Point: 9, Description: "Digitalizácia Sociálnej poisťovne a zníženie byrokracie"},
	{Point: 10, Description: "Zjednodušenie predčasného dôchodku s jasnými pravidlami"},
	{Point: 11, Description: "Podpora aktívnej staroby – práca popri dôchodku bez penalizácie"},
	{Point: 12, Description: "Lepšia ochrana dôchodkov pred infláciou"},
	{Point: 13, Description: "Medzigeneračná solidarita: bonusy za výchovu detí"},
}

// SportWages возвращает копию таблицы зарплат в порядке объявления.
// Копия защищает исходные данные от мутаций вызывающей стороной.
func SportWages() []WageRow {
	rows := make([]WageRow, len(sportWages))
	copy(rows, sportWages)
	return rows
}

// PensionReform возвращает копию шагов реформы в порядке объявления.
func PensionReform() []PensionStep {
	steps := make([]PensionStep, len(pensionReform))
	copy(steps, pensionReform)
	return steps
}
