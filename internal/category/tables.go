package category

// Folder tables per product. Keys are the source folder names exported by
// the CAD tooling.

// The CM03 export spells wall types with a hyphen. No routing rule matches
// that spelling, so CM03 wall parts land in the default folder.
const (
	legacyExtWall PartType = "EXT-WALL"
	legacyIntWall PartType = "INT-WALL"
)

var cm03 = newModel("CM03", []Side{SideCenter, SideLeft, SideRight}, map[string]Category{
	"CS02":    {SideCenter, legacyExtWall, Level1},
	"CS04":    {SideCenter, legacyExtWall, Level1},
	"CS11":    {SideCenter, legacyExtWall, Level2},
	"CS13":    {SideCenter, legacyExtWall, Level2},
	"C1":      {SideCenter, Floor, Level1},
	"C2":      {SideCenter, Floor, Level1},
	"C3":      {SideCenter, Floor, Level1},
	"C4":      {SideCenter, Floor, Level1},
	"C5":      {SideCenter, Floor, Level1},
	"C6":      {SideCenter, Floor, Level1},
	"C7":      {SideCenter, Floor, Level1},
	"C8":      {SideCenter, Floor, Level1},
	"C9":      {SideCenter, Floor, Level1},
	"C10":     {SideCenter, Floor, Level2},
	"C11":     {SideCenter, Floor, Level2},
	"C12":     {SideCenter, Floor, Level2},
	"C13":     {SideCenter, Floor, Level2},
	"S05":     {SideRight, legacyIntWall, Level1},
	"S06":     {SideLeft, legacyIntWall, Level1},
	"S07":     {SideLeft, legacyIntWall, Level1},
	"S08":     {SideLeft, legacyIntWall, Level1},
	"S09":     {SideRight, legacyIntWall, Level1},
	"S25":     {SideLeft, legacyIntWall, Level1},
	"S26":     {SideLeft, legacyIntWall, Level1},
	"S14":     {SideLeft, legacyIntWall, Level2},
	"S15":     {SideRight, legacyIntWall, Level2},
	"S16":     {SideLeft, legacyIntWall, Level2},
	"S17":     {SideRight, legacyIntWall, Level2},
	"S18":     {SideRight, legacyIntWall, Level2},
	"S19":     {SideRight, legacyIntWall, Level2},
	"S20":     {SideLeft, legacyIntWall, Level2},
	"S21":     {SideRight, legacyIntWall, Level2},
	"S22":     {SideRight, legacyIntWall, Level2},
	"S23":     {SideRight, legacyIntWall, Level2},
	"S24":     {SideRight, legacyIntWall, Level2},
	"CS01":    {SideRight, LGHA, Level1},
	"S03":     {SideLeft, LGHA, Level1},
	"CS10":    {SideRight, LGHA, Level2},
	"S12":     {SideLeft, LGHA, Level2},
	"CS(2)30": {SideRight, LGHA, Level3},
	"CS30":    {SideRight, LGHA, Level3},
	"S(2)32":  {SideLeft, LGHA, Level3},
	"S32":     {SideLeft, LGHA, Level3},
	"CT1":     {SideCenter, Roof, LevelAbsent},
	"CT2":     {SideCenter, Roof, LevelAbsent},
	"CT3":     {SideCenter, Roof, LevelAbsent},
	"CT4":     {SideCenter, Roof, LevelAbsent},
	"CT5":     {SideCenter, Roof, LevelAbsent},
	"CT6":     {SideCenter, Roof, LevelAbsent},
	"KS01":    {SideLeft, legacyExtWall, Level1},
	"KS02":    {SideLeft, legacyExtWall, Level1},
	"KS04":    {SideLeft, legacyExtWall, Level1},
	"KS10":    {SideLeft, legacyExtWall, Level2},
	"KS11":    {SideLeft, legacyExtWall, Level2},
	"KS13":    {SideLeft, legacyExtWall, Level2},
	"KS(2)30": {SideLeft, legacyExtWall, Level3},
	"KS30":    {SideLeft, legacyExtWall, Level3},
	"K1":      {SideLeft, Floor, Level1},
	"K2":      {SideLeft, Floor, Level1},
	"K3":      {SideLeft, Floor, Level1},
	"K4":      {SideLeft, Floor, Level1},
	"K5":      {SideLeft, Floor, Level1},
	"K6":      {SideLeft, Floor, Level1},
	"K7":      {SideLeft, Floor, Level1},
	"K8":      {SideLeft, Floor, Level1},
	"K9":      {SideLeft, Floor, Level2},
	"K10":     {SideLeft, Floor, Level2},
	"K11":     {SideLeft, Floor, Level2},
	"K12":     {SideLeft, Floor, Level2},
	"K13":     {SideLeft, Floor, Level2},
	"KS17":    {SideLeft, legacyIntWall, Level2},
	"KS22":    {SideLeft, legacyIntWall, Level2},
	"KT1":     {SideLeft, Roof, LevelAbsent},
	"KT2":     {SideLeft, Roof, LevelAbsent},
	"KT3":     {SideLeft, Roof, LevelAbsent},
	"KT4":     {SideLeft, Roof, LevelAbsent},
	"KT5":     {SideLeft, Roof, LevelAbsent},
	"KT6":     {SideLeft, Roof, LevelAbsent},
	"DS02":    {SideRight, legacyExtWall, Level1},
	"DS03":    {SideRight, legacyExtWall, Level1},
	"DS04":    {SideRight, legacyExtWall, Level1},
	"DS11":    {SideRight, legacyExtWall, Level2},
	"DS12":    {SideRight, legacyExtWall, Level2},
	"DS13":    {SideRight, legacyExtWall, Level2},
	"DS(2)32": {SideRight, legacyExtWall, Level3},
	"DS32":    {SideRight, legacyExtWall, Level3},
	"D1":      {SideRight, Floor, Level1},
	"D2":      {SideRight, Floor, Level1},
	"D3":      {SideRight, Floor, Level1},
	"D4":      {SideRight, Floor, Level1},
	"D5":      {SideRight, Floor, Level1},
	"D6":      {SideRight, Floor, Level1},
	"D7":      {SideRight, Floor, Level1},
	"D8":      {SideRight, Floor, Level1},
	"D9":      {SideRight, Floor, Level1},
	"D10":     {SideRight, Floor, Level2},
	"D11":     {SideRight, Floor, Level2},
	"D12":     {SideRight, Floor, Level2},
	"D13":     {SideRight, Floor, Level2},
	"D14":     {SideRight, Floor, Level2},
	"DS06":    {SideRight, legacyIntWall, Level1},
	"DS07":    {SideRight, legacyIntWall, Level1},
	"DS08":    {SideRight, legacyIntWall, Level1},
	"DS25":    {SideRight, legacyIntWall, Level1},
	"DS26":    {SideRight, legacyIntWall, Level1},
	"DS14":    {SideRight, legacyIntWall, Level2},
	"DS16":    {SideRight, legacyIntWall, Level2},
	"DS20":    {SideRight, legacyIntWall, Level2},
	"DT1":     {SideRight, Roof, LevelAbsent},
	"DT2":     {SideRight, Roof, LevelAbsent},
	"DT3":     {SideRight, Roof, LevelAbsent},
	"DT4":     {SideRight, Roof, LevelAbsent},
	"DT5":     {SideRight, Roof, LevelAbsent},
	"DT6":     {SideRight, Roof, LevelAbsent},
})

var cm06 = newModel("CM06", nil, map[string]Category{
	"S01":    {SideAbsent, ExtWall, Level1},
	"S02":    {SideAbsent, ExtWall, Level1},
	"S03":    {SideAbsent, ExtWall, Level1},
	"S04":    {SideAbsent, ExtWall, Level1},
	"S10":    {SideAbsent, ExtWall, Level2},
	"S11":    {SideAbsent, ExtWall, Level2},
	"S12":    {SideAbsent, ExtWall, Level2},
	"S13":    {SideAbsent, ExtWall, Level2},
	"S(2)11": {SideAbsent, ExtWall, Level2},
	"S(2)13": {SideAbsent, ExtWall, Level2},
	"P1":     {SideAbsent, Floor, LevelAbsent},
	"P2":     {SideAbsent, Floor, LevelAbsent},
	"P3":     {SideAbsent, Floor, LevelAbsent},
	"P4":     {SideAbsent, Floor, LevelAbsent},
	"P5":     {SideAbsent, Floor, LevelAbsent},
	"P6":     {SideAbsent, Floor, LevelAbsent},
	"S05":    {SideAbsent, IntWall, Level1},
	"S06":    {SideAbsent, IntWall, Level1},
	"S07":    {SideAbsent, IntWall, Level1},
	"S08":    {SideAbsent, IntWall, Level1},
	"S09":    {SideAbsent, IntWall, Level1},
	"S29":    {SideAbsent, IntWall, Level1},
	"S30":    {SideAbsent, IntWall, Level1},
	"S14":    {SideAbsent, IntWall, Level2},
	"S15":    {SideAbsent, IntWall, Level2},
	"S16":    {SideAbsent, IntWall, Level2},
	"S17":    {SideAbsent, IntWall, Level2},
	"S18":    {SideAbsent, IntWall, Level2},
	"S19":    {SideAbsent, IntWall, Level2},
	"S20":    {SideAbsent, IntWall, Level2},
	"S21":    {SideAbsent, IntWall, Level2},
	"S22":    {SideAbsent, IntWall, Level2},
	"S23":    {SideAbsent, IntWall, Level2},
	"S24":    {SideAbsent, IntWall, Level2},
	"S25":    {SideAbsent, IntWall, Level2},
	"S26":    {SideAbsent, IntWall, Level2},
	"S27":    {SideAbsent, IntWall, Level2},
	"S28":    {SideAbsent, IntWall, Level2},
	"st1":    {SideAbsent, Roof, LevelAbsent},
	"st2":    {SideAbsent, Roof, LevelAbsent},
	"st3":    {SideAbsent, Roof, LevelAbsent},
	"st4":    {SideAbsent, Roof, LevelAbsent},
	"st5":    {SideAbsent, Roof, LevelAbsent},
	"st6":    {SideAbsent, Roof, LevelAbsent},
	"st7":    {SideAbsent, Roof, LevelAbsent},
	"st8":    {SideAbsent, Roof, LevelAbsent},
	"st9":    {SideAbsent, Roof, LevelAbsent},
	"st10":   {SideAbsent, Roof, LevelAbsent},
})
