package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/chronos/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SpriteLoader loads sprite images by asset path.
// Rendering code depends on this interface so that a missing or undecodable
// asset never reaches the simulation.
type SpriteLoader interface {
	LoadSprite(path string) (*ebiten.Image, error)
}

// FontLoader loads a font face of the given size by asset path.
type FontLoader interface {
	LoadFont(path string, size float64) (*text.GoTextFace, error)
}

// ErrNoAudioContext is returned by the audio loaders when the manager was
// created without an audio context (headless hosts and tests).
var ErrNoAudioContext = errors.New("resource manager has no audio context")

// ResourceManager is responsible for loading and caching game assets.
//
// All reads go through pkg/embedded, so paths must start with "assets/".
// Images, decoded sound data and font faces are cached by path; a path that
// failed to load once is remembered and not retried every frame.
//
// This implementation is NOT thread-safe. The game loop is single-threaded
// and all loading happens on it.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	img, err := rm.LoadSprite("assets/cutscenes/cutscene 3.png")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> Image
	soundCache    map[string][]byte           // path -> decoded PCM data
	fontFaceCache map[string]*text.GoTextFace // "path:size" -> face
	failed        map[string]error            // path -> first load error
	audioContext  *audio.Context              // may be nil
}

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil, in which case every audio load fails with
// ErrNoAudioContext.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string][]byte),
		fontFaceCache: make(map[string]*text.GoTextFace),
		failed:        make(map[string]error),
		audioContext:  audioContext,
	}
}

// LoadImage loads an image from the specified path and caches it.
//
// Returns an error if the file does not exist or cannot be decoded.
// Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}
	if err, failed := rm.failed[path]; failed {
		return nil, err
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to open image file %s: %w", path, err))
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to decode image %s: %w", path, err))
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadSprite implements SpriteLoader.
func (rm *ResourceManager) LoadSprite(path string) (*ebiten.Image, error) {
	return rm.LoadImage(path)
}

// NewAudioPlayer decodes the OGG file at path (once) and returns a fresh
// player for it. When loop is true the stream is wrapped in an infinite loop.
//
// Every call returns a new player, so overlapping one-shot effects do not cut
// each other off.
func (rm *ResourceManager) NewAudioPlayer(path string, loop bool) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, ErrNoAudioContext
	}

	data, err := rm.loadSoundData(path)
	if err != nil {
		return nil, err
	}

	var stream io.Reader = bytes.NewReader(data)
	if loop {
		stream = audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// loadSoundData reads and decodes an audio file into raw PCM bytes.
// Only OGG Vorbis (.ogg) is supported.
func (rm *ResourceManager) loadSoundData(path string) ([]byte, error) {
	if data, exists := rm.soundCache[path]; exists {
		return data, nil
	}
	if err, failed := rm.failed[path]; failed {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ogg" {
		return nil, rm.fail(path, fmt.Errorf("unsupported audio format: %s (supported: .ogg)", ext))
	}

	raw, err := embedded.ReadFile(path)
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to read audio file %s: %w", path, err))
	}

	stream, err := vorbis.DecodeWithSampleRate(rm.audioContext.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to decode OGG audio %s: %w", path, err))
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to read decoded audio %s: %w", path, err))
	}

	rm.soundCache[path] = data
	return data, nil
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the
// given size. Faces are cached by path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}
	if err, failed := rm.failed[path]; failed {
		return nil, err
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to read font file %s: %w", path, err))
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, rm.fail(path, fmt.Errorf("failed to create font source for %s: %w", path, err))
	}

	log.Printf("[ResourceManager] Font loaded: %s (size %.1f)", path, size)
	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// fail remembers a load error for path. Missing files are logged once.
func (rm *ResourceManager) fail(path string, err error) error {
	rm.failed[path] = err
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[ResourceManager] Asset not found: %s", path)
	} else {
		log.Printf("[ResourceManager] Warning: %v", err)
	}
	return err
}

var (
	_ SpriteLoader = (*ResourceManager)(nil)
	_ FontLoader   = (*ResourceManager)(nil)
)
