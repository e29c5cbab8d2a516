// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

// Literal content for the three brand home pages. The marketing copy is
// fixed per release; everything dynamic lives behind the portals.

// ContentItem is a titled card with optional illustration.
type ContentItem struct {
	Title       string
	Description string
	Image       string
}

// Segment is an audience card with a call to action.
type Segment struct {
	Title       string
	Description string
	CTA         string
	Href        string
}

// CitySpot is one entry of the cities carousel.
type CitySpot struct {
	Name        string
	State       string
	Description string
	Image       string
	Soon        bool
}

// ConsultingStep is one stage of the advisory method timeline.
type ConsultingStep struct {
	Title string
	Text  string
}

// WhatsContact is a labelled WhatsApp line for the clinic page.
type WhatsContact struct {
	Label string
	Href  string
}

var practiceAreas = []string{
	"Enfermagem",
	"Nutrição",
	"Farmácia",
	"Biomedicina",
	"Psicologia",
	"Serviços Hospitalares e Home Care",
	"Gestão de Escalas e Serviços Administrativos",
	"Cursos e Treinamentos",
}

var souArteServices = []ContentItem{
	{
		Title:       "Serviços Hospitalares",
		Description: "Atuação em enfermagem, nutrição, farmácia, biomedicina, psicologia e outras áreas de apoio clínico.",
		Image:       "/static/images/servicos-hospitalares.png",
	},
	{
		Title:       "Serviços Domiciliares - Home Care",
		Description: "Cuidado humanizado no lar, respeitando a história e a realidade de cada paciente.",
		Image:       "/static/images/home-care.png",
	},
	{
		Title:       "Gestão de Escalas",
		Description: "Planejamento de equipes e cobertura assistencial com segurança e agilidade.",
		Image:       "/static/images/gestao-escalas.png",
	},
	{
		Title:       "Serviços Administrativos",
		Description: "Suporte de bastidores para garantir fluidez, organização e compliance.",
		Image:       "/static/images/servicos-administrativos.png",
	},
	{
		Title:       "Cursos e Treinamentos",
		Description: "Formação prática e teórica para desenvolvimento técnico e humano.",
		Image:       "/static/images/cursos-treinamentos.png",
	},
	{
		Title:       "Atendimento Multidisciplinar",
		Description: "Conexão entre profissionais e especialidades para cuidado integral.",
		Image:       "/static/images/atendimento-multidisciplinar.png",
	},
}

var souArteSegments = []Segment{
	{
		Title:       "Hospitais, Clínicas e Associações",
		Description: "Estruturamos equipes completas para atendimento hospitalar, apoio administrativo e gestão de escalas.",
		CTA:         "Solicitar proposta",
		Href:        "#contato",
	},
	{
		Title:       "Home Care e Famílias",
		Description: "Assistência domiciliar com protocolo científico e acolhimento verdadeiro, do primeiro contato ao acompanhamento.",
		CTA:         "Agendar conversa",
		Href:        "https://wa.me/5569999220012",
	},
}

var associateHighlights = []string{
	"Escalas organizadas com antecedência e alinhadas ao seu perfil",
	"Suporte administrativo para facilitar seu dia a dia",
	"Treinamentos e atualização contínua",
	"Ambiente ético, colaborativo e acolhedor",
}

var souArteCities = []CitySpot{
	{
		Name:        "Porto Velho",
		State:       "RO",
		Description: "Atuação hospitalar e domiciliar com equipe multidisciplinar e gestão de escalas.",
		Image:       "/static/images/cidades/porto-velho.jpg",
	},
	{
		Name:        "Ji-Paraná",
		State:       "RO",
		Description: "Cobertura assistencial integrada com foco em qualidade clínica e acolhimento.",
		Image:       "/static/images/cidades/ji-parana.jpg",
	},
	{
		Name:        "Cacoal",
		State:       "RO",
		Description: "Equipes alinhadas aos protocolos da Sou Arte para hospitais e home care.",
		Image:       "/static/images/cidades/cacoal.jpg",
	},
	{
		Name:        "Vila Velha",
		State:       "ES",
		Description: "Atendimento humanizado com suporte administrativo e treinamento contínuo.",
		Image:       "/static/images/cidades/vila-velha.jpg",
	},
	{
		Name:        "Rio Branco",
		State:       "AC",
		Description: "Expansão em andamento para trazer toda a estrutura da Sou Arte à região.",
		Image:       "/static/images/cidades/rio-branco.jpg",
		Soon:        true,
	},
}

// Select options for the two contact forms.
var (
	serviceTypeOptions = []string{
		"Serviços Hospitalares",
		"Home Care",
		"Gestão de Escalas",
		"Serviços Administrativos",
		"Cursos e Treinamentos",
		"Atendimento Multidisciplinar",
		"Outro",
	}
	professionOptions = []string{
		"Enfermeiro(a)",
		"Técnico(a) de Enfermagem",
		"Psicólogo(a)",
		"Biomédico(a)",
		"Farmacêutico(a)",
		"Nutricionista",
	}
	workAreaOptions = []string{
		"Enfermagem",
		"Nutrição",
		"Farmácia",
		"Biomedicina",
		"Psicologia",
		"Administrativo",
		"Outra área",
	}
	availabilityOptions = []string{
		"Plantões",
		"Horário comercial",
		"Turnos específicos",
		"A combinar",
	}
)

var clinicServices = []ContentItem{
	{Title: "Fonoaudiologia", Description: "Avaliação e terapias para comunicação, fala, voz e deglutição."},
	{Title: "Fisioterapia", Description: "Reabilitação e prevenção funcional com planos personalizados."},
	{Title: "Nutrição", Description: "Acompanhamento nutricional para saúde e qualidade de vida."},
	{Title: "Terapia Ocupacional", Description: "Autonomia e desempenho nas atividades do dia a dia."},
	{Title: "Psicopedagogia", Description: "Apoio ao desenvolvimento e aos processos de aprendizagem."},
	{Title: "Psicologia", Description: "Cuidado emocional com atendimento humanizado e sigiloso."},
	{Title: "Clínica Médica", Description: "Avaliação clínica ampla e direcionamentos em saúde."},
	{Title: "Exames Audiológicos", Description: "Diagnóstico completo para saúde auditiva."},
}

var clinicCareModes = []ContentItem{
	{Title: "Atendimento Hospitalar", Description: "Equipe preparada para suporte clínico e terapêutico no ambiente hospitalar."},
	{Title: "Atendimento Ambulatorial", Description: "Acompanhamento presencial com estrutura completa e acolhedora."},
	{Title: "Home Care", Description: "Cuidado no conforto do lar, com segurança e sensibilidade."},
}

var clinicHighlights = []string{
	"Equipe multiprofissional integrada e alinhada às necessidades do paciente",
	"Planos terapêuticos personalizados para cada fase da vida",
	"Estrutura completa para reabilitação, prevenção e acompanhamento contínuo",
}

var clinicWhatsApp = []WhatsContact{
	{Label: "(69) 99957-9773", Href: "https://wa.me/5569999579773"},
	{Label: "(69) 99933-6717", Href: "https://wa.me/5569999336717"},
}

var abaPlans = []string{
	"Select",
	"Innova",
	"Unimed Nacional",
	"Ameron Saúde",
	"CapeSesp",
	"Astir",
	"Unimed Porto Velho",
	"GEAP Saúde",
	"Postal Saúde",
}

var abaCare = []string{
	"Avaliação psicopedagógica",
	"Intervenção psicopedagógica",
}

var consultingServices = []ContentItem{
	{Title: "Gestão em Saúde", Description: "Estratégia, indicadores e processos para elevar performance clínica."},
	{Title: "Assessoria em Saúde", Description: "Suporte especializado para decisões e operação do dia a dia."},
	{Title: "Credenciamento Médico", Description: "Consultoria completa para credenciamento e expansão assistencial."},
	{Title: "Faturamento Médico/Hospitalar", Description: "Organização do fluxo financeiro com foco em previsibilidade."},
	{Title: "Auditoria em Saúde", Description: "Conformidade, redução de glosas e segurança nos processos."},
}

var consultingOutcomes = []string{
	"Padronização de processos e melhoria contínua",
	"Redução de perdas financeiras e glosas",
	"Apoio estratégico para tomada de decisão",
	"Equipe alinhada e treinada para resultados sustentáveis",
}

var consultingSteps = []ConsultingStep{
	{Title: "Diagnóstico", Text: "Análise de processos e indicadores."},
	{Title: "Plano de ação", Text: "Definição de metas e prioridades."},
	{Title: "Implementação", Text: "Ajustes operacionais com acompanhamento."},
	{Title: "Indicadores", Text: "Monitoramento contínuo de resultados."},
}
