package fechas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/pkg/fechas"
)

func TestCorta(t *testing.T) {
	f := time.Date(2023, time.November, 29, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "29/11/2023", fechas.Corta(f))
}

func TestCorta_DiaYMesDeUnDigito(t *testing.T) {
	f := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", fechas.Corta(f), "día y mes se rellenan con cero")
}

func TestLarga(t *testing.T) {
	f := time.Date(2023, time.November, 29, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "29 de noviembre de 2023, 14:30", fechas.Larga(f))
}

func TestLarga_MedianocheEnero(t *testing.T) {
	f := time.Date(2025, time.January, 1, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, "01 de enero de 2025, 00:05", fechas.Larga(f))
}
