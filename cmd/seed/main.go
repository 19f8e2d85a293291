// seed genera una migración goose que inserta categorías a partir de un archivo de
// texto con un nombre por línea. Los slugs se derivan del nombre.
//
// Uso: go run ./cmd/seed [-latin1] [-out ruta.sql] [categorias.txt]
// Por defecto lee cmd/seed/categories.txt y escribe
// internal/infrastructure/postgres/migrations/00004_seed_categories.sql
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/blog-api/pkg/slug"
)

type category struct {
	name string
	slug string
}

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo de entrada está en ISO-8859-1")
	outPath := flag.String("out", "", "archivo SQL de salida")
	flag.Parse()

	moduleRoot := findModuleRoot()
	inPath := filepath.Join(moduleRoot, "cmd", "seed", "categories.txt")
	if flag.NArg() > 0 {
		inPath = flag.Arg(0)
	}
	if *outPath == "" {
		*outPath = filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "00004_seed_categories.sql")
	}

	f, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir entrada: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var in io.Reader = f
	if *latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	cats, err := readCategories(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer categorías: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeMigration(out, cats); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d categorías\n", *outPath, len(cats))
}

// readCategories lee un nombre por línea. Ignora líneas vacías, comentarios (#),
// nombres fuera de 3..40 caracteres y slugs repetidos.
func readCategories(r io.Reader) ([]category, error) {
	var cats []category
	seen := map[string]bool{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if n := len([]rune(name)); n < 3 || n > 40 {
			fmt.Fprintf(os.Stderr, "omitida %q: debe contener entre 3 y 40 caracteres\n", name)
			continue
		}
		s := slug.Make(name)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		cats = append(cats, category{name: name, slug: s})
	}
	return cats, sc.Err()
}

func writeMigration(w io.Writer, cats []category) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("-- Categorías iniciales del blog\n")
	bw.WriteString("-- Generado por cmd/seed\n\n")
	bw.WriteString("-- +goose Up\n")
	for _, c := range cats {
		fmt.Fprintf(bw, "INSERT INTO categories (name, slug)\n")
		fmt.Fprintf(bw, "SELECT '%s', '%s' WHERE NOT EXISTS (SELECT 1 FROM categories WHERE slug = '%s');\n",
			escapeSQL(c.name), c.slug, c.slug)
	}

	bw.WriteString("\n-- +goose Down\n")
	if len(cats) > 0 {
		slugs := make([]string, 0, len(cats))
		for _, c := range cats {
			slugs = append(slugs, "'"+c.slug+"'")
		}
		fmt.Fprintf(bw, "DELETE FROM categories WHERE slug IN (%s);\n", strings.Join(slugs, ", "))
	}
	return bw.Flush()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
