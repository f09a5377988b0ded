//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_enabled.png", color.RGBA{60, 180, 90, 255}},    // Зелёный
		{"icon_disabled.png", color.RGBA{128, 128, 128, 255}}, // Серый
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

func generateIcon(path string, c color.RGBA) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Рисуем корпус мыши (овал)
	centerX, centerY := size/2, size/2
	rx, ry := 16.0, 24.0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x-centerX) / rx
			dy := float64(y-centerY) / ry
			if dx*dx+dy*dy <= 1.0 {
				img.Set(x, y, c)
			}
		}
	}

	// Выделяем правую кнопку белой насечкой
	for y := centerY - int(ry) + 4; y < centerY-4; y++ {
		for x := centerX + 2; x < centerX+int(rx)-2; x++ {
			dx := float64(x-centerX) / rx
			dy := float64(y-centerY) / ry
			if dx*dx+dy*dy <= 0.7 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
