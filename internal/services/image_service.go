package services

import (
	"fmt"
	img "image"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"pixelbanner/internal/config"
	"pixelbanner/internal/files"
	"pixelbanner/internal/image"
	"pixelbanner/internal/storage"
)

const (
	widthMode = "proportional"
	boxSize   = 14
	upscale   = 2
)

var (
	bannerStyle = image.TextStyle{
		Color:            color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ShadowColor:      color.RGBA{R: 80, G: 80, B: 80, A: 255},
		HorizontalCenter: true,
	}
	tileColor       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	darkTileColor   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	transparent     = color.RGBA{}
	previewBackdrop = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	titleZhCN   = "方舟像素字体"
	titleFull   = "方舟像素字体 / Ark Pixel Font"
	titleLatin  = "Ark Pixel Font"
	slogan      = "★ 开源的泛中日韩像素字体 ★"
	sampleZhCN  = "我们每天度过的称之为日常的生活，其实是一个个奇迹的连续也说不定。"
	sampleZhCN1 = "我们每天度过的称之为日常的生活，"
	sampleZhCN2 = "其实是一个个奇迹的连续也说不定。"
	sampleZhTR  = "我們每天度過的稱之為日常的生活，其實是一個個奇跡的連續也說不定。"
	sampleZhTR1 = "我們每天度過的稱之為日常的生活，"
	sampleZhTR2 = "其實是一個個奇跡的連續也說不定。"
	sampleJa    = "日々、私たちが過ごしている日常は、実は奇跡の連続なのかもしれない。"
	sampleJa1   = "日々、私たちが過ごしている日常は、"
	sampleJa2   = "実は奇跡の連続なのかもしれない。"
	sampleUpper = "THE QUICK BROWN FOX JUMPS OVER A LAZY DOG."
	sampleLower = "the quick brown fox jumps over a lazy dog."
	sampleDigit = "0123456789"
	symbols     = "★☆☺☹♠♡♢♣♤♥♦♧☀☼♩♪♫♬☂☁⚓✈⚔☯"
	symbols1    = "★☆☺☹♠♡♢♣♤♥♦♧"
	symbols2    = "☀☼♩♪♫♬☂☁⚓✈⚔☯"
)

type fontSet struct {
	title *image.Font
	latin *image.Font
	zhCN  *image.Font
	zhTR  *image.Font
	ja    *image.Font
}

type textLine struct {
	y    int
	text string
	font *image.Font
}

type Target struct {
	Name string
	Make func() error
}

type ImageService struct {
	cfg       *config.Config
	fonts     *files.FontLoader
	alphabets *files.AlphabetLoader
	assets    *files.AssetLoader
	processor *image.Processor
	outputs   *storage.OutputStore
	logger    *log.Logger
}

func NewImageService(
	cfg *config.Config,
	fonts *files.FontLoader,
	alphabets *files.AlphabetLoader,
	assets *files.AssetLoader,
	processor *image.Processor,
	outputs *storage.OutputStore,
	logger *log.Logger,
) *ImageService {
	return &ImageService{
		cfg:       cfg,
		fonts:     fonts,
		alphabets: alphabets,
		assets:    assets,
		processor: processor,
		outputs:   outputs,
		logger:    logger,
	}
}

func (s *ImageService) Targets() []Target {
	return []Target{
		{Name: "preview", Make: s.MakePreviewImages},
		{Name: "readme-banner", Make: s.MakeReadmeBanner},
		{Name: "github-banner", Make: s.MakeGithubBanner},
		{Name: "itch-io-banner", Make: s.MakeItchIoBanner},
		{Name: "itch-io-background", Make: s.MakeItchIoBackground},
		{Name: "itch-io-cover", Make: s.MakeItchIoCover},
		{Name: "afdian-cover", Make: s.MakeAfdianCover},
	}
}

func (s *ImageService) MakeAll() error {
	for _, t := range s.Targets() {
		if err := t.Make(); err != nil {
			return fmt.Errorf("%s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *ImageService) MakePreviewImages() error {
	for _, fc := range s.cfg.Fonts {
		if err := s.MakePreviewImage(fc); err != nil {
			return err
		}
	}
	return nil
}

func (s *ImageService) MakePreviewImage(fc config.FontConfig) error {
	fonts, err := s.loadFontSet(fc)
	if err != nil {
		return err
	}

	canvas := s.processor.NewCanvas(fc.Size*35, fc.Size*2+fc.LineHeight*8, previewBackdrop)
	lines := []textLine{
		{0, titleFull, fonts.zhCN},
		{1, sampleZhCN, fonts.zhCN},
		{2, sampleZhTR, fonts.zhTR},
		{3, sampleJa, fonts.ja},
		{4, sampleUpper, fonts.latin},
		{5, sampleLower, fonts.latin},
		{6, sampleDigit, fonts.latin},
		{7, symbols, fonts.latin},
	}
	for _, l := range lines {
		image.DrawText(canvas, float64(fc.Size), float64(fc.Size+fc.LineHeight*l.y), l.text, l.font, image.TextStyle{})
	}

	return s.save(canvas, fc.PreviewImageFileName(), "preview image")
}

func (s *ImageService) MakeReadmeBanner() error {
	return s.makeTitleBanner("readme-banner", "readme banner", 28, titleZhCN)
}

func (s *ImageService) MakeItchIoBanner() error {
	return s.makeTitleBanner("itch-io-banner", "itch.io banner", 32, titleFull)
}

// makeTitleBanner draws a double size title over the slogan, on top of a tiled glyph backdrop.
func (s *ImageService) makeTitleBanner(name, label string, top int, title string) error {
	fc, err := s.cfg.BannerFont()
	if err != nil {
		return err
	}
	fontX1, err := s.fonts.Load(fc, widthMode, "zh_cn", 1)
	if err != nil {
		return err
	}
	fontX2, err := s.fonts.Load(fc, widthMode, "zh_cn", 2)
	if err != nil {
		return err
	}

	canvas, err := s.tiledCanvas(fc, name+"-background.png", 12, fontX1)
	if err != nil {
		return err
	}

	x := float64(canvas.Bounds().Dx()) / 2
	image.DrawText(canvas, x, float64(top), title, fontX2, bannerStyle)
	image.DrawText(canvas, x, float64(top+fc.LineHeight*2+4), slogan, fontX1, bannerStyle)

	return s.save(canvas, name+".png", label)
}

func (s *ImageService) MakeGithubBanner() error {
	fc, err := s.cfg.BannerFont()
	if err != nil {
		return err
	}
	fonts, err := s.loadFontSet(fc)
	if err != nil {
		return err
	}

	canvas, err := s.tiledCanvas(fc, "github-banner-background.png", 6, fonts.zhCN)
	if err != nil {
		return err
	}

	s.drawCentredLines(canvas, 40, fc.LineHeight, []textLine{
		{1, titleFull, fonts.title},
		{3, slogan, fonts.zhCN},
		{5, sampleZhCN, fonts.zhCN},
		{6, sampleZhTR, fonts.zhTR},
		{7, sampleJa, fonts.ja},
		{8, sampleUpper, fonts.latin},
		{9, sampleLower, fonts.latin},
		{10, sampleDigit, fonts.latin},
		{11, symbols, fonts.latin},
	})

	return s.save(canvas, "github-banner.png", "github banner")
}

func (s *ImageService) MakeItchIoBackground() error {
	fc, err := s.cfg.BannerFont()
	if err != nil {
		return err
	}
	alphabet, err := s.alphabets.Read(fc, widthMode)
	if err != nil {
		return err
	}
	f, err := s.fonts.Load(fc, widthMode, "zh_cn", 1)
	if err != nil {
		return err
	}

	canvas := s.processor.NewCanvas(boxSize*50, boxSize*50, transparent)
	image.DrawTextBackground(canvas, alphabet, 2, boxSize, f, darkTileColor)

	return s.save(canvas, "itch-io-background.png", "itch.io background")
}

func (s *ImageService) MakeItchIoCover() error {
	fc, err := s.cfg.BannerFont()
	if err != nil {
		return err
	}
	fonts, err := s.loadFontSet(fc)
	if err != nil {
		return err
	}

	canvas, err := s.backgroundCanvas("itch-io-cover-background.png")
	if err != nil {
		return err
	}

	s.drawCentredLines(canvas, 6, fc.LineHeight, []textLine{
		{0, titleZhCN, fonts.title},
		{2, sampleZhCN1, fonts.zhCN},
		{3, sampleZhCN2, fonts.zhCN},
		{4, sampleZhTR1, fonts.zhTR},
		{5, sampleZhTR2, fonts.zhTR},
		{6, sampleJa1, fonts.ja},
		{7, sampleJa2, fonts.ja},
		{8, sampleUpper, fonts.latin},
		{9, sampleLower, fonts.latin},
		{10, sampleDigit, fonts.latin},
		{11, symbols1, fonts.latin},
		{12, symbols2, fonts.latin},
	})

	return s.save(canvas, "itch-io-cover.png", "itch.io cover")
}

func (s *ImageService) MakeAfdianCover() error {
	fc, err := s.cfg.BannerFont()
	if err != nil {
		return err
	}
	fonts, err := s.loadFontSet(fc)
	if err != nil {
		return err
	}

	canvas, err := s.backgroundCanvas("afdian-cover-background.png")
	if err != nil {
		return err
	}

	// The header block sits 12px from the top; the slogan and samples are pushed down by 6 more.
	s.drawCentredLines(canvas, 12, fc.LineHeight, []textLine{
		{0, titleZhCN, fonts.title},
		{2, titleLatin, fonts.zhCN},
	})
	s.drawCentredLines(canvas, 18, fc.LineHeight, []textLine{
		{3, slogan, fonts.zhCN},
		{5, sampleZhCN1, fonts.zhCN},
		{6, sampleZhCN2, fonts.zhCN},
		{7, sampleZhTR1, fonts.zhTR},
		{8, sampleZhTR2, fonts.zhTR},
		{9, sampleJa1, fonts.ja},
		{10, sampleJa2, fonts.ja},
		{11, sampleUpper, fonts.latin},
		{12, sampleLower, fonts.latin},
		{13, sampleDigit, fonts.latin},
		{14, symbols1, fonts.latin},
		{15, symbols2, fonts.latin},
	})

	return s.save(canvas, "afdian-cover.png", "afdian cover")
}

func (s *ImageService) loadFontSet(fc config.FontConfig) (*fontSet, error) {
	var fonts fontSet
	var err error

	if fonts.title, err = s.fonts.Load(fc, widthMode, "zh_cn", 2); err != nil {
		return nil, err
	}
	if fonts.latin, err = s.fonts.Load(fc, widthMode, "latin", 1); err != nil {
		return nil, err
	}
	if fonts.zhCN, err = s.fonts.Load(fc, widthMode, "zh_cn", 1); err != nil {
		return nil, err
	}
	if fonts.zhTR, err = s.fonts.Load(fc, widthMode, "zh_tr", 1); err != nil {
		return nil, err
	}
	if fonts.ja, err = s.fonts.Load(fc, widthMode, "ja", 1); err != nil {
		return nil, err
	}
	return &fonts, nil
}

// tiledCanvas paints the alphabet grid on a transparent canvas the size of the background,
// then lays the background over it so the glyphs only show through its transparent parts.
func (s *ImageService) tiledCanvas(fc config.FontConfig, background string, step int, f *image.Font) (*img.RGBA, error) {
	alphabet, err := s.alphabets.Read(fc, widthMode)
	if err != nil {
		return nil, err
	}
	bg, err := s.assets.Background(background)
	if err != nil {
		return nil, err
	}

	b := bg.Bounds()
	canvas := s.processor.NewCanvas(b.Dx(), b.Dy(), transparent)
	image.DrawTextBackground(canvas, alphabet, step, boxSize, f, tileColor)
	s.processor.Paste(canvas, bg)
	return canvas, nil
}

func (s *ImageService) backgroundCanvas(background string) (*img.RGBA, error) {
	bg, err := s.assets.Background(background)
	if err != nil {
		return nil, err
	}
	return s.processor.CanvasFrom(bg), nil
}

func (s *ImageService) drawCentredLines(canvas *img.RGBA, top, lineHeight int, lines []textLine) {
	x := float64(canvas.Bounds().Dx()) / 2
	for _, l := range lines {
		image.DrawText(canvas, x, float64(top+lineHeight*l.y), l.text, l.font, bannerStyle)
	}
}

func (s *ImageService) save(canvas *img.RGBA, fileName, label string) error {
	out := s.processor.Upscale(canvas, upscale)

	if err := files.EnsureDir(s.cfg.OutputsDir); err != nil {
		return err
	}

	path := filepath.Join(s.cfg.OutputsDir, fileName)
	if err := gg.SavePNG(path, out); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	s.logger.Printf("Made %s: '%s'", label, path)
	s.outputs.Add(strings.TrimSuffix(fileName, filepath.Ext(fileName)), path)
	return nil
}
