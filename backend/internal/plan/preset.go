package plan

import (
	"fmt"
	"path"
	"sort"
	"vincit.fi/asset-fitter/api/apitype"
)

const (
	androidResDir = "android/app/src/main/res"
	iosIconDir    = "ios/Runner/Assets.xcassets/AppIcon.appiconset"
	webDir        = "web"
	playStoreDir  = "assets/playstore"
	brandDir      = "assets/brand"

	splashSource     = "assets/icon/splash_logo.png"
	iconSource       = "assets/icon/icon.png"
	foregroundSource = "assets/icon/icon_foreground.png"

	transparent = "#00000000"
)

type density struct {
	name  string
	scale float64
}

var densities = []density{
	{"mdpi", 1}, {"hdpi", 1.5}, {"xhdpi", 2}, {"xxhdpi", 3}, {"xxxhdpi", 4},
}

type splashSlot struct {
	folder string
	width  int
	height int
}

var splashSlots = []splashSlot{
	{"drawable", 320, 480},
	{"drawable-hdpi", 480, 800},
	{"drawable-xhdpi", 720, 1280},
	{"drawable-xxhdpi", 1080, 1920},
	{"drawable-xxxhdpi", 1440, 2560},
}

type iosIcon struct {
	points string
	scale  int
	size   int
}

var iosIcons = []iosIcon{
	{"20x20", 1, 20}, {"20x20", 2, 40}, {"20x20", 3, 60},
	{"29x29", 1, 29}, {"29x29", 2, 58}, {"29x29", 3, 87},
	{"40x40", 1, 40}, {"40x40", 2, 80}, {"40x40", 3, 120},
	{"50x50", 1, 50}, {"50x50", 2, 100},
	{"57x57", 1, 57}, {"57x57", 2, 114},
	{"60x60", 1, 60}, {"60x60", 2, 120}, {"60x60", 3, 180},
	{"72x72", 1, 72}, {"72x72", 2, 144},
	{"76x76", 1, 76}, {"76x76", 2, 152},
	{"80x80", 1, 80},
	{"83.5x83.5", 2, 167},
	{"87x87", 1, 87},
	{"120x120", 1, 120},
	{"152x152", 1, 152},
	{"167x167", 1, 167},
	{"180x180", 1, 180},
	{"1024x1024", 1, 1024},
}

var presets = map[string]func() *Definition{
	"android-splash":           androidSplash,
	"android-launcher":         androidLauncher,
	"android-foreground":       androidForeground,
	"android-solid-foreground": androidSolidForeground,
	"ios":                      ios,
	"web":                      web,
	"playstore":                playStore,
	"brand":                    brandAssets,
	"all":                      all,
}

func PresetNames() []string {
	var names []string
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh definition of the named built-in plan.
func Preset(name string) (*Definition, error) {
	if preset, ok := presets[name]; ok {
		return preset(), nil
	}
	return nil, fmt.Errorf("%w: unknown preset '%s', available: %v", apitype.ErrInvalidInput, name, PresetNames())
}

func squareAsset(name string, kind apitype.AssetKind, size int, output string) AssetDefinition {
	return AssetDefinition{Name: name, Kind: string(kind), Size: size, Output: output}
}

func androidSplash() *Definition {
	definition := &Definition{Name: "android-splash", Source: splashSource}
	for _, slot := range splashSlots {
		definition.Assets = append(definition.Assets, AssetDefinition{
			Name:   slot.folder,
			Kind:   string(apitype.KindFit),
			Width:  slot.width,
			Height: slot.height,
			Output: path.Join(androidResDir, slot.folder, "launch_image.png"),
		})
	}
	return definition
}

func androidLauncher() *Definition {
	definition := &Definition{Name: "android-launcher", Source: iconSource}
	for _, d := range densities {
		folder := "mipmap-" + d.name
		size := int(48 * d.scale)
		for _, file := range []string{"ic_launcher.png", "ic_launcher_round.png"} {
			definition.Assets = append(definition.Assets,
				squareAsset(path.Join(folder, file), apitype.KindFit, size, path.Join(androidResDir, folder, file)))
		}
	}
	return definition
}

func androidForeground() *Definition {
	definition := &Definition{Name: "android-foreground", Source: foregroundSource}
	for _, d := range densities {
		folder := "mipmap-" + d.name
		asset := squareAsset(folder, apitype.KindFit, int(108*d.scale),
			path.Join(androidResDir, folder, "ic_launcher_foreground.png"))
		asset.Background = transparent
		asset.KeepAlpha = true
		definition.Assets = append(definition.Assets, asset)
	}
	return definition
}

func androidSolidForeground() *Definition {
	definition := &Definition{Name: "android-solid-foreground"}
	for _, prefix := range []string{"mipmap-", "drawable-"} {
		for _, d := range densities {
			folder := prefix + d.name
			definition.Assets = append(definition.Assets, squareAsset(folder, apitype.KindSolid, int(108*d.scale),
				path.Join(androidResDir, folder, "ic_launcher_foreground.png")))
		}
	}
	return definition
}

func ios() *Definition {
	definition := &Definition{Name: "ios", Source: iconSource}
	for _, icon := range iosIcons {
		file := fmt.Sprintf("Icon-App-%s@%dx.png", icon.points, icon.scale)
		definition.Assets = append(definition.Assets,
			squareAsset(file, apitype.KindFit, icon.size, path.Join(iosIconDir, file)))
	}
	return definition
}

func web() *Definition {
	definition := &Definition{Name: "web", Source: iconSource}
	for _, size := range []int{192, 512} {
		for _, prefix := range []string{"Icon-", "Icon-maskable-"} {
			file := fmt.Sprintf("%s%d.png", prefix, size)
			definition.Assets = append(definition.Assets,
				squareAsset(file, apitype.KindFit, size, path.Join(webDir, "icons", file)))
		}
	}
	definition.Assets = append(definition.Assets,
		squareAsset("favicon.png", apitype.KindFit, 32, path.Join(webDir, "favicon.png")),
		squareAsset("favicon.ico", apitype.KindFavicon, 32, path.Join(webDir, "favicon.ico")),
	)
	return definition
}

func playStore() *Definition {
	return &Definition{
		Name:   "playstore",
		Source: iconSource,
		Assets: []AssetDefinition{
			squareAsset("app_icon_512", apitype.KindFit, 512, path.Join(playStoreDir, "app_icon_512.png")),
			squareAsset("app_icon_1024", apitype.KindFit, 1024, path.Join(playStoreDir, "app_icon_1024.png")),
			featureGraphic(path.Join(playStoreDir, "feature_graphic.png")),
		},
	}
}

func brandAssets() *Definition {
	definition := &Definition{Name: "brand"}
	for _, size := range []int{1024, 512} {
		asset := squareAsset(fmt.Sprintf("icon_%d", size), apitype.KindBrandIcon, size,
			path.Join(brandDir, fmt.Sprintf("icon_%d.png", size)))
		asset.KeepAlpha = true
		definition.Assets = append(definition.Assets, asset)
	}
	definition.Assets = append(definition.Assets, featureGraphic(path.Join(brandDir, "feature_graphic.png")))
	return definition
}

// all combines the presets that share the app icon as their source.
func all() *Definition {
	definition := &Definition{Name: "all", Source: iconSource}
	for _, preset := range []func() *Definition{androidLauncher, ios, web, playStore} {
		definition.Assets = append(definition.Assets, preset().Assets...)
	}
	return definition
}

func featureGraphic(output string) AssetDefinition {
	return AssetDefinition{
		Name:   "feature_graphic",
		Kind:   string(apitype.KindFeatureGraphic),
		Width:  1024,
		Height: 500,
		Output: output,
	}
}
