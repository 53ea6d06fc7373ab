// File path: internal/refdata/sectors.go
package refdata

// Setores lists the sectors the operation form offers.
var Setores = []string{
	"Alimentos",
	"Automotivo",
	"Brinquedos",
	"Construção",
	"Cosméticos",
	"Eletrônicos",
	"Farmacêutico",
	"Máquinas",
	"Médico",
	"Químicos",
	"Têxteis",
	"Outros",
}

// Modalidades lists the import modalities.
var Modalidades = []string{
	"Conta e Ordem",
	"Encomenda",
	"Por Conta Própria",
}

// sectorAnuentes maps a sector to the agencies that usually have to endorse
// its imports. The mapping is fixed; it is not configurable at runtime.
var sectorAnuentes = map[string][]string{
	"Alimentos":    {"MAPA", "ANVISA"},
	"Cosméticos":   {"ANVISA"},
	"Farmacêutico": {"ANVISA"},
	"Médico":       {"ANVISA"},
	"Químicos":     {"IBAMA", "ANP"},
	"Eletrônicos":  {"ANATEL", "INMETRO"},
	"Brinquedos":   {"INMETRO"},
	"Automotivo":   {"INMETRO"},
}

// AnuentesForSector returns the agencies expected to endorse imports of
// the given sector, or nil when the sector is unregulated.
func AnuentesForSector(sector string) []string {
	agencies, ok := sectorAnuentes[sector]
	if !ok {
		return nil
	}
	out := make([]string, len(agencies))
	copy(out, agencies)
	return out
}

// SectorRequiresAnuente reports whether the sector needs at least one
// agency endorsement before clearance.
func SectorRequiresAnuente(sector string) bool {
	return len(sectorAnuentes[sector]) > 0
}
