// seed_demo genera un script SQL para poblar la tienda con datos de
// demostración: los cuatro métodos de pago del panel y el catálogo de juegos
// leído de un CSV exportado de la planilla histórica (separado por ';' y
// codificado en ISO-8859-1, con tildes y eñes en los nombres).
//
// Formato esperado del CSV: nombre;precio_unitario;stock;formato
// Un stock vacío significa "sin control de stock" (juegos digitales).
//
// Uso: go run ./cmd/seed_demo [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type juego struct {
	nombre  string
	precio  string
	stock   string // "" = sin control de stock
	formato string
}

// Métodos de pago que el tablero de estadísticas sabe codificar.
var metodosPago = []string{"Efectivo", "Credito", "Debito", "Transferencia"}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// La planilla original exporta en ISO-8859-1; convertir a UTF-8 al leer.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var juegos []juego
	for i, rec := range records {
		nombre := strings.TrimSpace(rec[0])
		if i == 0 && strings.EqualFold(nombre, "nombre") {
			continue // cabecera
		}
		if nombre == "" {
			continue
		}
		precio := strings.TrimSpace(rec[1])
		if _, err := strconv.ParseFloat(precio, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q, se omite\n", i+1, precio)
			continue
		}
		formato := strings.TrimSpace(rec[3])
		if formato == "" {
			formato = "Físico"
		}
		juegos = append(juegos, juego{
			nombre:  nombre,
			precio:  precio,
			stock:   strings.TrimSpace(rec[2]),
			formato: formato,
		})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración de la ludoteca\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	out.WriteString("-- 1. Métodos de pago\n")
	out.WriteString("INSERT INTO metodos_pago (id, nombre) VALUES\n")
	for i, m := range metodosPago {
		sep := ","
		if i == len(metodosPago)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('mp-%s', '%s')%s\n", strings.ToLower(m), m, sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	out.WriteString("-- 2. Catálogo de juegos\n")
	for i, j := range juegos {
		stock := "NULL"
		if j.stock != "" {
			stock = j.stock
		}
		fmt.Fprintf(out, "INSERT INTO productos (id, nombre, precio_unitario, stock, formato)\n")
		fmt.Fprintf(out, "VALUES ('seed-j-%03d', '%s', %s, %s, '%s')\n",
			i+1, escapeSQL(j.nombre), j.precio, stock, escapeSQL(j.formato))
		out.WriteString("ON CONFLICT (id) DO UPDATE SET precio_unitario = EXCLUDED.precio_unitario, stock = EXCLUDED.stock;\n")
	}

	fmt.Printf("Generado %s: %d métodos de pago, %d juegos\n", outPath, len(metodosPago), len(juegos))
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
