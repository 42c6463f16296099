// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airac-tools/airac-notice/pkg/types"
)

const sampleAmdt = "https://aip.enaire.es/AIP/contenido_AMDT/LE_Amdt_A_2025_01_en.pdf"

func TestRender(t *testing.T) {
	a := types.Amendment{Cycle: "2501", EffectiveDate: "23 JAN 2025", DownloadURL: sampleAmdt}
	changes := types.ChangeList{
		{Region: "LECB", Lines: []string{"\t● LEBL: SID (Pag 5)"}},
		{Region: "GCCC", Lines: []string{"\t● GCLP: AD 2"}},
	}
	links := []types.Link{{Name: "ENR 3.0", URL: "https://example.com/enr30.pdf"}}

	got := Render(a, changes, links)

	want := "**Comunicación Mensual de Enmienda AIRAC** **Ciclo 2501**\n" +
		"*Fecha de entrada en vigor: 23 JAN 2025*\n\n" +
		"Enlaces de descarga de la enmienda:\n" +
		"[AMDT](" + sampleAmdt + ")\n\n" +
		"**FIR de LECB**\n\t● LEBL: SID (Pag 5)\n\n" +
		"**FIR de GCCC**\n\t● GCLP: AD 2\n\n" +
		"**Aerovías Antiguas**\n" +
		"ENR antiguo con información del sistema anterior de aerovías:\n" +
		"[ENR 3.0](https://example.com/enr30.pdf)\n\n" +
		"Este documento se ha generado automáticamente. Puede contener errores.\n\n" +
		"SOLO PARA USO EN SIMULACIÓN - NO VÁLIDO PARA OPERACIONES REALES\n\n" +
		"Departamento de Operaciones ATC de IVAO España 📡\n"
	assert.Equal(t, want, got)
}

func TestRenderWithoutChanges(t *testing.T) {
	a := types.Amendment{Cycle: "2502", EffectiveDate: "20 FEB 2025", DownloadURL: sampleAmdt}
	got := Render(a, nil, types.DefaultNoticeConfig().LegacyENR)

	assert.Contains(t, got, "[AMDT]("+sampleAmdt+")\n\n\n**Aerovías Antiguas**")
	assert.NotContains(t, got, "**FIR de")
	assert.Equal(t, 3, strings.Count(got, "2402_LE_ENR_3_"))
}

func TestRenderWithoutLegacyLinks(t *testing.T) {
	a := types.Amendment{Cycle: "2502", EffectiveDate: "20 FEB 2025", DownloadURL: sampleAmdt}
	got := Render(a, nil, nil)
	assert.Contains(t, got, "**Aerovías Antiguas**\n"+
		"ENR antiguo con información del sistema anterior de aerovías:\n\n"+
		"Este documento")
	assert.True(t, strings.HasSuffix(got, "IVAO España 📡\n"))
}
