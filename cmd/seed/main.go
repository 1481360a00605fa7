// seed popula as tabelas de referência (cnaes e municipios) a partir dos CSVs
// do IBGE e garante os pacotes de créditos padrão.
//
// Uso: go run ./cmd/seed [cnaes.csv] [municipios.csv]
// Formato esperado: cnaes.csv = codigo;descricao
//
//	municipios.csv = codigo_ibge;nome;uf
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/infrastructure/postgres"
	"github.com/acheileads/achei-leads-api/pkg/config"
)

func main() {
	cnaesPath := "cnaes.csv"
	municipiosPath := "municipios.csv"
	if len(os.Args) > 1 {
		cnaesPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		municipiosPath = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	refRepo := postgres.NewReferenceRepository(pool)
	packageRepo := postgres.NewCreditPackageRepository(pool)

	if n, err := seedCNAEs(refRepo, cnaesPath); err != nil {
		fmt.Fprintf(os.Stderr, "seed de CNAEs: %v\n", err)
		os.Exit(1)
	} else {
		fmt.Printf("cnaes: %d registros\n", n)
	}

	if n, err := seedMunicipios(refRepo, municipiosPath); err != nil {
		fmt.Fprintf(os.Stderr, "seed de municípios: %v\n", err)
		os.Exit(1)
	} else {
		fmt.Printf("municipios: %d registros\n", n)
	}

	if err := seedPackages(packageRepo); err != nil {
		fmt.Fprintf(os.Stderr, "seed de pacotes: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("pacotes de créditos garantidos")
}

func seedCNAEs(repo *postgres.ReferenceRepo, path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		if err := repo.UpsertCNAE(&entity.CNAE{Codigo: row[0], Descricao: row[1]}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func seedMunicipios(repo *postgres.ReferenceRepo, path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows {
		if len(row) < 3 || row[0] == "" {
			continue
		}
		m := &entity.Municipio{CodigoIBGE: row[0], Nome: row[1], UF: row[2]}
		if err := repo.UpsertMunicipio(m); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// seedPackages garante os pacotes padrão da loja pelo nome.
func seedPackages(repo *postgres.CreditPackageRepo) error {
	defaults := []struct {
		nome     string
		creditos int
		preco    string
	}{
		{"Inicial", 50, "29.90"},
		{"Profissional", 200, "99.90"},
		{"Agência", 500, "199.90"},
	}
	for _, d := range defaults {
		preco, err := decimal.NewFromString(d.preco)
		if err != nil {
			return err
		}
		pkg := &entity.CreditPackage{
			ID:        uuid.New().String(),
			Nome:      d.nome,
			Creditos:  d.creditos,
			Preco:     preco,
			Ativo:     true,
			CreatedAt: time.Now(),
		}
		if err := repo.Upsert(pkg); err != nil {
			return err
		}
	}
	return nil
}

// readCSV lê um CSV separado por ponto e vírgula, pulando a linha de cabeçalho.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
