// pkg/tilemap/level.go
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

var (
	// ErrLevelNotFound - файл уровня отсутствует.
	ErrLevelNotFound = errors.New("level not found")
	// ErrBadDimensions - размеры уровня не совпадают с полем.
	ErrBadDimensions = errors.New("unrecognized level dimensions")
)

// Layout - разобранный уровень: материал для каждой непустой клетки.
// Ключ - левый верхний угол клетки в пикселях.
type Layout map[image.Point]Material

// StageFile возвращает имя файла для номера стадии. Стадии за пределами
// count повторяются по кругу.
func StageFile(stage, count int) string {
	n := stage % count
	if n <= 0 {
		n += count
	}
	return strconv.Itoa(n)
}

// CountStages возвращает число стадий в fsys: файлы 1, 2, ... подряд до
// первого пропуска.
func CountStages(fsys fs.FS) int {
	if fsys == nil {
		return 0
	}
	n := 0
	for {
		if _, err := fs.Stat(fsys, strconv.Itoa(n+1)); err != nil {
			return n
		}
		n++
	}
}

// ParseLayout разбирает текстовую сетку уровня. Каждая строка файла - ряд
// клеток, каждый символ - клетка. Неизвестные символы и пробелы дают
// пустую клетку.
func ParseLayout(r io.Reader, tileSize, cols, rows int) (Layout, error) {
	layout := make(Layout)
	sc := bufio.NewScanner(r)
	y, filled := 0, 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			// Пустые строки в конце файла допустимы
			y++
			continue
		}
		if y >= rows {
			return nil, fmt.Errorf("%w: more than %d rows", ErrBadDimensions, rows)
		}
		filled++
		x := 0
		for _, ch := range line {
			if x >= cols {
				return nil, fmt.Errorf("%w: row %d wider than %d", ErrBadDimensions, y, cols)
			}
			if m := materialFromCode(ch); m != Empty {
				layout[image.Pt(x*tileSize, y*tileSize)] = m
			}
			x++
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}
	if filled == 0 {
		return nil, fmt.Errorf("%w: empty level", ErrBadDimensions)
	}
	return layout, nil
}

// ReadStage открывает и разбирает файл стадии из fsys.
func ReadStage(fsys fs.FS, stage, count, tileSize, cols, rows int) (Layout, error) {
	name := StageFile(stage, count)
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stage %d (%s): %w", stage, name, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("failed to open stage %d: %w", stage, err)
	}
	defer f.Close()

	layout, err := ParseLayout(f, tileSize, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stage, err)
	}
	return layout, nil
}
