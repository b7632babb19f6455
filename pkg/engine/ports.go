package engine

// portSpec is the fixed description of one supported source port.
type portSpec struct {
	name         string
	friendlyName string
	configName   string
	exeName      string
	singleFile   bool
	configArg    bool
	aggregate    bool
	variants     []string
	dialect      dialect
}

var (
	defaultVariants = []string{VariantMusic, VariantNoMusic, VariantNoMonsters}
	recordVariants  = []string{VariantMusic, VariantNoMusic, VariantNoMonsters, VariantRecord}
	gzdoomVariants  = []string{VariantMusic, VariantNoMusic, VariantSmooth, VariantBeautiful, VariantNoMonsters, VariantRecord}
)

// ports maps install directory prefixes to engines.
var ports = map[string]portSpec{
	"crispy_doom": {
		name: "crispy", friendlyName: "Crispy Doom",
		configName: "crispy-doom.cfg", exeName: "crispy-doom.exe",
		singleFile: true,
		variants:   defaultVariants,
		dialect:    crispy{},
	},
	"doom_retro": {
		name: "retro", friendlyName: "Doom Retro",
		configName: "doomretro.cfg", exeName: "doomretro.exe",
		singleFile: true, configArg: true,
		variants: defaultVariants,
		dialect:  retro{},
	},
	"prboom": {
		name: "prboom", friendlyName: "PRBoom-plus",
		configName: "prboom-plus.cfg", exeName: "prboom-plus.exe",
		singleFile: true, configArg: true,
		variants: defaultVariants,
		dialect:  boom{},
	},
	"glboom": {
		name: "glboom", friendlyName: "GLBoom-plus",
		configName: "glboom-plus.cfg", exeName: "glboom-plus.exe",
		singleFile: true, configArg: true,
		variants: recordVariants,
		dialect:  boom{},
	},
	"dsda": {
		name: "dsda", friendlyName: "dsda-doom",
		configName: "dsda-doom.cfg", exeName: "dsda-doom.exe",
		singleFile: true, configArg: true, aggregate: true,
		variants: recordVariants,
		dialect:  dsda{},
	},
	"gzdoom": {
		name: "gzdoom", friendlyName: "GZDoom",
		configName: "gzdoom.ini", exeName: "gzdoom.exe",
		configArg: true,
		variants:  gzdoomVariants,
		dialect:   gzdoom{},
	},
	"zdoom": {
		name: "zdoom", friendlyName: "ZDoom",
		configName: "zdoom.ini", exeName: "zdoom.exe",
		configArg: true,
		variants:  defaultVariants,
		dialect:   standard{},
	},
}

// skippedPorts are installed but never generated for.
var skippedPorts = map[string]bool{
	"zandronum": true,
}
