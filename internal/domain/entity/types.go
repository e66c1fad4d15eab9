// Package entity contiene los modelos de dominio del portal de cumplimiento.
// Los modelos son objetos de valor puros: predicados de validación y
// proyecciones derivadas, sin E/S. Política general: nunca fallar por datos
// almacenados malformados; los enums se normalizan a un valor seguro y las
// validaciones se reportan como booleanos.
package entity

// Niveles de urgencia de un aviso.
const (
	UrgenciaBaja    = "baja"
	UrgenciaMedia   = "media"
	UrgenciaAlta    = "alta"
	UrgenciaUrgente = "urgente"
)

// Tipos de organización de la sociedad civil.
const (
	TipoAsociacion  = "asociacion"
	TipoFundacion   = "fundacion"
	TipoInstitucion = "institucion"
	TipoOtro        = "otro"
)

// Roles de trabajador del órgano supervisor.
const (
	RolAdmin        = "admin"
	RolGestor       = "gestor"
	RolContador     = "contador"
	RolVisualizador = "visualizador"
)

// Estados de un donativo.
const (
	DonativoPendiente   = "pendiente"
	DonativoCompletado  = "completada"
	DonativoCancelado   = "cancelada"
	DonativoReembolsado = "reembolsada"
)

// Estados de un aviso (comunicado), en orden de ciclo de vida.
// Las transiciones las dirige el portal; el modelo no las impone.
const (
	AvisoEnviado   = "enviado"
	AvisoRecibido  = "recibido"
	AvisoLeido     = "leido"
	AvisoArchivado = "archivado"
)
