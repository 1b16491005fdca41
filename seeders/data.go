package seeders

import (
	"time"

	"asset-guardian/pkg/constants"
	"asset-guardian/pkg/types"
)

type assetFixture struct {
	Code            string
	Name            string
	Manufacturer    string
	Model           string
	Type            string
	Location        string
	AcquisitionDate string
	EstimatedLife   int
	Cost            float64
	SerialNumber    string
	Status          string
	NextMaintenance string
}

type technicianFixture struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
}

type materialFixture struct {
	Code     string
	Name     string
	Unit     string
	UnitCost float64
	Stock    float64
}

type materialUsageFixture struct {
	Code     string
	Quantity float64
}

type maintenanceFixture struct {
	AssetCode       string
	Type            string
	Description     string
	Cost            float64
	Date            string
	Deadline        string
	Status          string
	Responsible     string
	TechnicianEmail string
	Priority        string
	Duration        float64
	Materials       []materialUsageFixture
	FailureDetails  string
	Solution        string
	Attachments     []string
}

type fmeaFixture struct {
	AssetCode         string
	FailureMode       string
	Effect            string
	Cause             string
	Severity          int
	Occurrence        int
	Detection         int
	RecommendedAction string
	Responsible       string
	Status            string
}

type reportFixture struct {
	AssetCode   string
	Type        string
	Title       string
	Content     string
	Author      string
	Date        string
	Attachments []string
	Status      string
}

var assetFixtures = []assetFixture{
	{"TG-001", "Tesoura Guilhotina Principal", "MetalTech", "MT-2000", "Equipamento de Corte", "Linha de Produção 1", "2023-01-15", 120, 249999.99, "SN-TG-2023-001", constants.AssetStatusActive, "2024-06-15"},
	{"LP-002", "Laminador de Bobinas", "RollTech", "RT-5000", "Equipamento de Laminação", "Linha de Produção 2", "2023-02-20", 180, 1899999.99, "SN-LP-2023-002", constants.AssetStatusMaintenance, "2024-07-08"},
	{"FR-003", "Forno de Recozimento", "HeatTech", "HT-3000", "Equipamento Térmico", "Área de Tratamento Térmico", "2023-03-10", 144, 999999.99, "SN-FR-2023-003", constants.AssetStatusActive, "2024-06-12"},
	{"BH-101", "Bomba Hidráulica Principal", "HydraTech", "HT-1000", "Sistema Hidráulico", "Casa de Bombas", "2023-01-05", 120, 29999.99, "SN-BH-2023-001", constants.AssetStatusActive, "2024-06-20"},
	{"PH-201", "Prensa Hidráulica", "HydraTech", "HT-2000", "Equipamento de Conformação", "Área de Conformação", "2023-02-01", 120, 899999.99, "SN-PH-2023-001", constants.AssetStatusActive, "2024-06-10"},
	{"MI-301", "Misturador Industrial", "MixTech", "MT-3000", "Equipamento de Processamento", "Área de Processamento", "2023-03-15", 120, 109999.99, "SN-MI-2023-001", constants.AssetStatusActive, "2024-06-25"},
	{"CA-401", "Compressor de Ar", "AirTech", "AT-4000", "Sistema de Ar Comprimido", "Sala de Compressores", "2022-12-10", 120, 129999.99, "SN-CA-2022-001", constants.AssetStatusInactive, "2024-05-15"},
	{"SR-501", "Sistema de Refrigeração", "CoolTech", "CT-5000", "Sistema de Climatização", "Sala de Máquinas", "2023-02-28", 120, 399999.99, "SN-SR-2023-001", constants.AssetStatusActive, "2024-06-18"},
}

var technicianFixtures = []technicianFixture{
	{"João Silva", "joao.silva@assetguardian.local", "+55 11 90000-0001", "Mecânica"},
	{"Maria Santos", "maria.santos@assetguardian.local", "+55 11 90000-0002", "Hidráulica"},
	{"Carlos Oliveira", "carlos.oliveira@assetguardian.local", "+55 11 90000-0003", "Instrumentação"},
}

var materialFixtures = []materialFixture{
	{"MAT-OLH", "Óleo hidráulico", "l", 42.5, 400},
	{"MAT-FLT", "Filtros", "un", 120, 60},
	{"MAT-JNT", "Juntas", "un", 18.9, 250},
	{"MAT-SEL", "Selos hidráulicos", "un", 35, 180},
	{"MAT-LAM", "Lâminas de corte", "un", 1450, 12},
}

var maintenanceFixtures = []maintenanceFixture{
	{
		AssetCode:       "TG-001",
		Type:            constants.MaintenanceTypePreventive,
		Description:     "Manutenção preventiva trimestral da tesoura guilhotina principal",
		Cost:            2500,
		Date:            "2024-02-15",
		Deadline:        "2024-02-15",
		Status:          constants.MaintenanceStatusCompleted,
		Responsible:     "João Silva",
		TechnicianEmail: "joao.silva@assetguardian.local",
		Priority:        "medium",
		Duration:        6,
		Materials:       []materialUsageFixture{{"MAT-OLH", 20}, {"MAT-FLT", 2}},
		Attachments:     []string{"relatorio_manutencao.pdf"},
	},
	{
		AssetCode:       "TG-001",
		Type:            constants.MaintenanceTypeCorrective,
		Description:     "Troca emergencial de lâminas desgastadas",
		Cost:            4800,
		Date:            "2024-04-02",
		Deadline:        "2024-04-03",
		Status:          constants.MaintenanceStatusCompleted,
		Responsible:     "João Silva",
		TechnicianEmail: "joao.silva@assetguardian.local",
		Priority:        "high",
		Duration:        10,
		Materials:       []materialUsageFixture{{"MAT-LAM", 2}},
		FailureDetails:  "Corte irregular por desgaste excessivo das lâminas",
		Solution:        "Lâminas substituídas e folga ajustada",
	},
	{
		AssetCode:       "TG-001",
		Type:            constants.MaintenanceTypePreventive,
		Description:     "Manutenção preventiva trimestral da tesoura guilhotina principal",
		Cost:            2500,
		Date:            "2024-05-15",
		Deadline:        "2024-05-15",
		Status:          constants.MaintenanceStatusCompleted,
		Responsible:     "João Silva",
		TechnicianEmail: "joao.silva@assetguardian.local",
		Priority:        "medium",
		Duration:        6,
		Materials:       []materialUsageFixture{{"MAT-OLH", 20}, {"MAT-FLT", 2}},
		Attachments:     []string{"relatorio_manutencao.pdf"},
	},
	{
		AssetCode:       "LP-002",
		Type:            constants.MaintenanceTypePreventive,
		Description:     "Inspeção geral do laminador",
		Cost:            1800,
		Date:            "2024-05-20",
		Deadline:        "2024-05-20",
		Status:          constants.MaintenanceStatusCompleted,
		Responsible:     "Maria Santos",
		TechnicianEmail: "maria.santos@assetguardian.local",
		Priority:        "medium",
		Duration:        4,
	},
	{
		AssetCode:       "LP-002",
		Type:            constants.MaintenanceTypeCorrective,
		Description:     "Correção de vazamento no sistema hidráulico do laminador",
		Cost:            5000,
		Date:            "2024-06-08",
		Deadline:        "2024-06-10",
		Status:          constants.MaintenanceStatusInProgress,
		Responsible:     "Maria Santos",
		TechnicianEmail: "maria.santos@assetguardian.local",
		Priority:        "critical",
		Duration:        16,
		Materials:       []materialUsageFixture{{"MAT-JNT", 8}, {"MAT-SEL", 4}},
		FailureDetails:  "Identificado vazamento no cilindro principal",
		Solution:        "Em andamento",
		Attachments:     []string{"foto_vazamento.jpg"},
	},
	{
		AssetCode:       "FR-003",
		Type:            constants.MaintenanceTypePredictive,
		Description:     "Inspeção térmica e calibração do forno de recozimento",
		Cost:            1500,
		Date:            "2024-06-12",
		Deadline:        "2024-06-12",
		Status:          constants.MaintenanceStatusScheduled,
		Responsible:     "Carlos Oliveira",
		TechnicianEmail: "carlos.oliveira@assetguardian.local",
		Priority:        "low",
	},
	{
		AssetCode:       "BH-101",
		Type:            constants.MaintenanceTypePreventive,
		Description:     "Troca de filtros da bomba hidráulica",
		Cost:            900,
		Date:            "2024-03-20",
		Deadline:        "2024-03-20",
		Status:          constants.MaintenanceStatusCompleted,
		Responsible:     "Maria Santos",
		TechnicianEmail: "maria.santos@assetguardian.local",
		Priority:        "low",
		Duration:        2,
		Materials:       []materialUsageFixture{{"MAT-FLT", 1}},
	},
	{
		AssetCode:       "BH-101",
		Type:            constants.MaintenanceTypeEmergency,
		Description:     "Parada por cavitação na bomba",
		Cost:            3200,
		Date:            "2024-05-20",
		Deadline:        "2024-05-20",
		Status:          constants.MaintenanceStatusCompleted,
		Responsible:     "Maria Santos",
		TechnicianEmail: "maria.santos@assetguardian.local",
		Priority:        "critical",
		Duration:        8,
		Materials:       []materialUsageFixture{{"MAT-SEL", 2}},
	},
}

var fmeaFixtures = []fmeaFixture{
	{
		AssetCode:         "TG-001",
		FailureMode:       "Desgaste excessivo das lâminas",
		Effect:            "Corte irregular e perda de qualidade do produto",
		Cause:             "Uso contínuo sem troca programada",
		Severity:          8,
		Occurrence:        6,
		Detection:         7,
		RecommendedAction: "Implementar programa de troca preventiva de lâminas",
		Responsible:       "João Silva",
		Status:            "Em análise",
	},
	{
		AssetCode:         "TG-001",
		FailureMode:       "Vazamento no sistema hidráulico",
		Effect:            "Perda de pressão e parada não programada",
		Cause:             "Desgaste de vedações",
		Severity:          7,
		Occurrence:        4,
		Detection:         8,
		RecommendedAction: "Inspeção mensal do sistema hidráulico",
		Responsible:       "Maria Santos",
		Status:            "Implementado",
	},
	{
		AssetCode:         "TG-001",
		FailureMode:       "Falha no sistema de controle",
		Effect:            "Operação fora dos parâmetros especificados",
		Cause:             "Descalibração de sensores",
		Severity:          9,
		Occurrence:        3,
		Detection:         6,
		RecommendedAction: "Calibração trimestral do sistema de controle",
		Responsible:       "Carlos Oliveira",
		Status:            "Pendente",
	},
}

var reportFixtures = []reportFixture{
	{
		AssetCode:   "TG-001",
		Type:        constants.ReportTypeMaintenance,
		Title:       "Relatório de Manutenção Preventiva - Q1 2024",
		Content:     "Relatório detalhado das manutenções preventivas realizadas no primeiro trimestre de 2024.",
		Author:      "João Silva",
		Date:        "2024-03-31",
		Attachments: []string{"relatorio_q1_2024.pdf"},
		Status:      constants.ReportStatusPublished,
	},
	{
		AssetCode:   "TG-001",
		Type:        constants.ReportTypeInspection,
		Title:       "Inspeção de Equipamentos - Março 2024",
		Content:     "Resultados das inspeções realizadas em todos os equipamentos críticos.",
		Author:      "Maria Santos",
		Date:        "2024-03-15",
		Attachments: []string{"inspecao_marco_2024.pdf"},
		Status:      constants.ReportStatusPublished,
	},
	{
		AssetCode:   "LP-002",
		Type:        constants.ReportTypeFailure,
		Title:       "Análise de Falha - Sistema Hidráulico",
		Content:     "Análise detalhada da falha ocorrida no sistema hidráulico do laminador.",
		Author:      "Carlos Oliveira",
		Date:        "2024-02-20",
		Attachments: []string{"analise_falha_hidraulico.pdf"},
		Status:      constants.ReportStatusDraft,
	},
}

// mustDate - фикстуры статичны, поэтому ошибка формата - это баг в данных.
func mustDate(s string) time.Time {
	t, err := time.Parse(types.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
