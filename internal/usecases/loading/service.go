// Package loading interpreta as planilhas de vendas e de metas
package loading

import (
	"context"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// Source é um arquivo enviado pelo usuário
type Source struct {
	Name   string
	Reader io.Reader
}

// Loader transforma as duas planilhas em um Dataset
type Loader interface {
	Load(ctx context.Context, sales, targets Source) (*domain.Dataset, error)
}

type Service struct {
	sheets config.Workbook
}

func NewService(cfg *config.Config) *Service {
	return &Service{sheets: cfg.Workbook}
}

// Load lê as duas planilhas em paralelo e monta o Dataset
func (s *Service) Load(ctx context.Context, sales, targets Source) (*domain.Dataset, error) {
	var (
		records     []domain.SalesRecord
		dropped     int
		monthly     []domain.MonthlyTarget
		salesperson []domain.SalespersonTarget
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var g errgroup.Group

	g.Go(func() error {
		var err error
		records, dropped, err = s.LoadSales(sales.Reader)
		return errors.WithMessagef(err, "planilha de vendas %q", sales.Name)
	})

	g.Go(func() error {
		var err error
		monthly, salesperson, err = s.LoadTargets(targets.Reader)
		return errors.WithMessagef(err, "planilha de metas %q", targets.Name)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sales_rows":         len(records),
		"dropped_rows":       dropped,
		"targets":            len(monthly),
		"salesperson_target": len(salesperson),
	}).Info("Planilhas carregadas")

	return &domain.Dataset{
		SalesFile:          sales.Name,
		TargetsFile:        targets.Name,
		Sales:              records,
		Targets:            monthly,
		SalespersonTargets: salesperson,
		DroppedRows:        dropped,
		CreatedAt:          time.Now(),
	}, nil
}

// LoadSales lê a aba de vendas. Linhas com data ilegível são descartadas
// silenciosamente; a contagem de descartes é devolvida apenas para log.
func (s *Service) LoadSales(r io.Reader) ([]domain.SalesRecord, int, error) {
	f, err := openWorkbook(r)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	sheet := s.sheets.SalesSheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, 0, errors.Wrap(ErrMissingSheet, "planilha sem abas")
		}
		sheet = list[0]
	}

	rows, err := readSheet(f, sheet)
	if err != nil {
		return nil, 0, err
	}

	cols, err := newHeader(rows[0]).require(sheet, ColIssueDate, ColAmount, ColOrderCount, ColSalesperson)
	if err != nil {
		return nil, 0, err
	}
	dateCol, amountCol, countCol, spCol := cols[0], cols[1], cols[2], cols[3]

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	dropped := 0

	for i, row := range rows[1:] {
		line := i + 2
		if blankRow(row) {
			continue
		}

		date, ok := parseCellDate(cell(row, dateCol))
		if !ok {
			dropped++
			logrus.WithField("line", line).Debug("Linha de venda descartada: data inválida")
			continue
		}

		amount, err := parseNonNegative(cell(row, amountCol))
		if err != nil {
			return nil, 0, errors.Wrapf(err, "aba %q linha %d coluna %q", sheet, line, ColAmount)
		}

		count, err := parseNonNegative(cell(row, countCol))
		if err != nil {
			return nil, 0, errors.Wrapf(err, "aba %q linha %d coluna %q", sheet, line, ColOrderCount)
		}

		records = append(records, domain.SalesRecord{
			Date:        date,
			Amount:      amount,
			OrderCount:  int(math.Round(count)),
			Salesperson: cell(row, spCol),
		})
	}

	return records, dropped, nil
}

// LoadTargets lê a aba de metas gerais e a aba de metas por vendedor
func (s *Service) LoadTargets(r io.Reader) ([]domain.MonthlyTarget, []domain.SalespersonTarget, error) {
	f, err := openWorkbook(r)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	monthly, err := s.loadMonthlyTargets(f)
	if err != nil {
		return nil, nil, err
	}

	salesperson, err := s.loadSalespersonTargets(f)
	if err != nil {
		return nil, nil, err
	}

	return monthly, salesperson, nil
}

func (s *Service) loadMonthlyTargets(f *excelize.File) ([]domain.MonthlyTarget, error) {
	sheet := s.sheets.TargetsSheet

	rows, err := readSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	cols, err := newHeader(rows[0]).require(sheet, ColMonth, ColTargetMonthly, ColTargetAccumulate)
	if err != nil {
		return nil, err
	}

	targets := make([]domain.MonthlyTarget, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := i + 2

		initial, err := parseOptional(cell(row, cols[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "aba %q linha %d coluna %q", sheet, line, ColTargetMonthly)
		}
		monthlyTarget, err := parseOptional(cell(row, cols[2]))
		if err != nil {
			return nil, errors.Wrapf(err, "aba %q linha %d coluna %q", sheet, line, ColTargetAccumulate)
		}

		name := cell(row, cols[0])
		month, _ := domain.MonthFromName(name)

		targets = append(targets, domain.MonthlyTarget{
			Month:             month,
			MonthName:         name,
			InitialTarget:     initial,
			MonthlyTarget:     monthlyTarget,
			AccumulatedTarget: monthlyTarget,
		})
	}

	return targets, nil
}

func (s *Service) loadSalespersonTargets(f *excelize.File) ([]domain.SalespersonTarget, error) {
	sheet := s.sheets.SalespersonTargetSheet

	rows, err := readSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	targetColumns := []string{ColSPInitial, ColSPMonthly, ColSPAccumulated}
	cols, err := newHeader(rows[0]).require(sheet, append([]string{ColSalesperson, ColMonth}, targetColumns...)...)
	if err != nil {
		return nil, err
	}

	targets := make([]domain.SalespersonTarget, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := i + 2

		values := make([]*float64, len(targetColumns))
		for j, col := range cols[2:] {
			v, err := parseOptional(cell(row, col))
			if err != nil {
				return nil, errors.Wrapf(err, "aba %q linha %d coluna %q", sheet, line, targetColumns[j])
			}
			values[j] = v
		}

		name := cell(row, cols[1])
		month, _ := domain.MonthFromName(name)

		targets = append(targets, domain.SalespersonTarget{
			Salesperson:       cell(row, cols[0]),
			Month:             month,
			MonthName:         name,
			InitialTarget:     values[0],
			MonthlyTarget:     values[1],
			AccumulatedTarget: values[2],
		})
	}

	return targets, nil
}

func openWorkbook(r io.Reader) (*excelize.File, error) {
	if r == nil {
		return nil, errors.Wrap(ErrOpenWorkbook, "arquivo ausente")
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(ErrOpenWorkbook, err.Error())
	}
	return f, nil
}

// readSheet devolve as linhas com valores brutos (datas como número serial)
func readSheet(f *excelize.File, sheet string) ([][]string, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		return nil, errors.Wrapf(ErrMissingSheet, "%q (disponíveis: %v)", sheet, f.GetSheetList())
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %q", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptySheet, "%q", sheet)
	}
	return rows, nil
}

// parseCellDate aceita número serial do Excel ou data em texto
func parseCellDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	return utils.ParseDate(raw)
}

// parseNonNegative trata célula vazia como zero e rejeita valores negativos
func parseNonNegative(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := utils.ParseAmount(raw)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidValue, err.Error())
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrInvalidValue, "valor negativo %q", raw)
	}
	return v, nil
}

// parseOptional trata célula vazia como meta inexistente
func parseOptional(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := utils.ParseAmount(raw)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidValue, err.Error())
	}
	return &v, nil
}
