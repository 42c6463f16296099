// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"fmt"
	"strings"

	"github.com/airac-tools/airac-notice/pkg/types"
)

const (
	disclaimer     = "Este documento se ha generado automáticamente. Puede contener errores."
	simulationOnly = "SOLO PARA USO EN SIMULACIÓN - NO VÁLIDO PARA OPERACIONES REALES"
	signature      = "Departamento de Operaciones ATC de IVAO España 📡"
)

// Render composes the announcement from the amendment metadata, the
// grouped change entries and the legacy enroute chart links.
func Render(a types.Amendment, changes types.ChangeList, legacyENR []types.Link) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Comunicación Mensual de Enmienda AIRAC** **Ciclo %s**\n", a.Cycle)
	fmt.Fprintf(&b, "*Fecha de entrada en vigor: %s*\n\n", a.EffectiveDate)
	b.WriteString("Enlaces de descarga de la enmienda:\n")
	fmt.Fprintf(&b, "[AMDT](%s)\n\n", a.DownloadURL)

	if !changes.Empty() {
		b.WriteString(ChangesText(changes))
	}
	b.WriteString("\n")

	b.WriteString("**Aerovías Antiguas**\n")
	b.WriteString("ENR antiguo con información del sistema anterior de aerovías:\n")
	for _, l := range legacyENR {
		fmt.Fprintf(&b, "[%s](%s)\n", l.Name, l.URL)
	}
	b.WriteString("\n")

	b.WriteString(disclaimer + "\n\n")
	b.WriteString(simulationOnly + "\n\n")
	b.WriteString(signature + "\n")
	return b.String()
}
