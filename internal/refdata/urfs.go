// File path: internal/refdata/urfs.go
package refdata

// URF is a customs clearance unit (Unidade da Receita Federal). The code
// is the Siscomex identifier the declaration XML carries.
type URF struct {
	Nome   string `json:"nome"`
	Codigo string `json:"codigo"`
}

var urfs = []URF{
	{Nome: "Santos/SP", Codigo: "0817800"},
	{Nome: "Paranaguá/PR", Codigo: "0915400"},
	{Nome: "Rio Grande/RS", Codigo: "1017700"},
	{Nome: "Itajaí/SC", Codigo: "0927800"},
	{Nome: "Rio de Janeiro/RJ", Codigo: "0717600"},
	{Nome: "Vitória/ES", Codigo: "0717700"},
	{Nome: "Suape/PE", Codigo: "0417900"},
	{Nome: "Salvador/BA", Codigo: "0517800"},
	{Nome: "Manaus/AM", Codigo: "0227600"},
	{Nome: "São Paulo/SP (Aeroporto)", Codigo: "0817600"},
	{Nome: "Campinas/SP (Viracopos)", Codigo: "0817700"},
	{Nome: "Guarulhos/SP", Codigo: "0817900"},
	{Nome: "Curitiba/PR", Codigo: "0915100"},
	{Nome: "Porto Alegre/RS", Codigo: "1017500"},
	{Nome: "Brasília/DF", Codigo: "0117600"},
}

// URFs returns the despatch unit catalogue.
func URFs() []URF {
	out := make([]URF, len(urfs))
	copy(out, urfs)
	return out
}

// URFCode resolves a unit name (e.g. "Santos/SP") to its Siscomex code.
// Unknown names return the empty string.
func URFCode(nome string) string {
	for _, u := range urfs {
		if u.Nome == nome {
			return u.Codigo
		}
	}
	return ""
}
