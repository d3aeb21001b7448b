package schema

// SymptomCode identifies one of the clinical symptoms a patient reports.
type SymptomCode string

const (
	AbdominalPain       SymptomCode = "ABDOMINAL_PAIN"
	ChestPain           SymptomCode = "CHEST_PAIN"
	Cough               SymptomCode = "COUGH"
	Dehydration         SymptomCode = "DEHYDRATION"
	Diarrhea            SymptomCode = "DIARRHEA"
	Fever               SymptomCode = "FEVER"
	Headache            SymptomCode = "HEADACHE"
	Itching             SymptomCode = "ITCHING"
	MuscleAches         SymptomCode = "MUSCLE_ACHES"
	Nausea              SymptomCode = "NAUSEA"
	NeckStiffness       SymptomCode = "NECK_STIFFNESS"
	Photophobia         SymptomCode = "PHOTOPHOBIA"
	Polydipsia          SymptomCode = "POLYDIPSIA"
	Polyuria            SymptomCode = "POLYURIA"
	Rash                SymptomCode = "RASH"
	RespiratoryDistress SymptomCode = "RESPIRATORY_DISTRESS"
	RunnyNose           SymptomCode = "RUNNY_NOSE"
	Sneezing            SymptomCode = "SNEEZING"
	SoreThroat          SymptomCode = "SORE_THROAT"
	Stridor             SymptomCode = "STRIDOR"
	Vomiting            SymptomCode = "VOMITING"
	WeightLoss          SymptomCode = "WEIGHT_LOSS"
	Wheezing            SymptomCode = "WHEEZING"
)

// SymptomCodes is the canonical symptom order. Every disease weight vector
// and every submitted severity vector is indexed by this order. Reordering it
// invalidates all stored historical scores.
var SymptomCodes = []SymptomCode{
	AbdominalPain, ChestPain, Cough, Dehydration, Diarrhea, Fever, Headache,
	Itching, MuscleAches, Nausea, NeckStiffness, Photophobia, Polydipsia,
	Polyuria, Rash, RespiratoryDistress, RunnyNose, Sneezing, SoreThroat,
	Stridor, Vomiting, WeightLoss, Wheezing,
}

// MaxSeverity is the upper bound of the ordinal severity self-report
// (0 = absent, 3 = severe).
const MaxSeverity = 3

// IsSymptomCode reports whether code is part of the canonical catalog.
func IsSymptomCode(code SymptomCode) bool {
	for _, c := range SymptomCodes {
		if c == code {
			return true
		}
	}
	return false
}

// DiseaseModel is one precomputed linear model of the static catalog:
// a weight per symptom code, in canonical symptom order, plus a baseline.
type DiseaseModel struct {
	Name    string
	Weights []float64
	Base    float64
}

// DiseaseModels is the static disease catalog. The slice order is the
// tie-break order of the scoring engine, so entries must not be reordered.
var DiseaseModels = []DiseaseModel{
	{
		Name:    "Gastroenteritis",
		Weights: []float64{0.0, 0.0, 0.0, 2.835492374437445, 15.358088877898277, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 2.2150830135431683, 0.0, 0.0},
		Base:    43.76321546894878,
	},
	{
		Name:    "Croup",
		Weights: []float64{0.0, 0.0, 11.445743094869425, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 2.87292660938857, 0.0, 0.0, 0.0, 11.52701610240259, 0.0, 0.0, 0.0},
		Base:    32.031654663581826,
	},
	{
		Name:    "Scarlet Fever",
		Weights: []float64{0.0, 0.0, 0.0, 0.0, 0.0, 9.116404717554731, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 9.159872877966544, 0.0, 0.0, 0.0, 8.910748251927256, 0.0, 0.0, 0.0, 0.0},
		Base:    23.817103444179114,
	},
	{
		Name:    "Eczema",
		Weights: []float64{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 12.088135680193556, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 12.230981001282307, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		Base:    32.27669511833457,
	},
	{
		Name:    "Asthma",
		Weights: []float64{0.0, 0.0, 4.013460044880404, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 3.148492399703434, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 15.56929617979114},
		Base:    42.23353377651567,
	},
	{
		Name:    "Type 1 Diabetes",
		Weights: []float64{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 4.226327290578648, 4.3550777255458515, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 4.999718366968764, 0.0},
		Base:    69.86173564127515,
	},
	{
		Name:    "Bronchiolitis",
		Weights: []float64{0.0, 0.0, 11.82227219023071, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 2.2277262934489515, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 11.708398608051098},
		Base:    30.368790732206605,
	},
	{
		Name:    "Meningitis",
		Weights: []float64{0.0, 0.0, 0.0, 0.0, 0.0, 8.995565067705446, 8.546131902138402, 0.0, 0.0, 0.0, 8.714651354612204, 2.2869737170763695, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		Base:    21.466857330755033,
	},
	{
		Name:    "Influenza",
		Weights: []float64{0.0, 0.0, 9.59320387475004, 0.0, 0.0, 8.640868953054095, 1.7856157416078982, 0.0, 8.959693076647547, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		Base:    22.474301999408752,
	},
	{
		Name:    "Pneumonia",
		Weights: []float64{0.0, 2.187194382475494, 10.2438779340937, 0.0, 0.0, 9.201196328535795, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 8.879709650994538, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		Base:    22.039462525010897,
	},
	{
		Name:    "Chickenpox",
		Weights: []float64{0.0, 0.0, 0.0, 0.0, 0.0, 3.1380009798357853, 0.0, 12.145343392428853, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 11.88079352135918, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		Base:    30.971991926994647,
	},
	{
		Name:    "Appendicitis",
		Weights: []float64{14.733187425381898, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 3.657776271847671, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 2.5721136493562833, 0.0, 0.0},
		Base:    44.026175264172544,
	},
	{
		Name:    "Common Cold",
		Weights: []float64{0.0, 0.0, 3.321662031504646, 0.0, 0.0, 1.9510386014496788, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 14.608440261670545, 3.248914037624695, 0.0, 0.0, 0.0, 0.0, 0.0},
		Base:    42.32083725409407,
	},
}

// DiseaseRecommendations maps a top-ranked disease to the care advice stored
// with a diary entry. Texts are carried over from the clinical catalog as-is.
var DiseaseRecommendations = map[string]string{
	"Gastroenteritis": "Регидратация (оральные растворы типа Регидрон), дробное питьё, диета. При боли – спазмолитик по возрасту.",
	"Croup":           "Увлажнённый прохладный воздух, ингаляции физраствором. При выраженном лающем кашле – консультация врача.",
	"Scarlet Fever":   "Жаропонижающее (парацетамол/ибупрофен по возрасту), обильное питьё. Обязателен осмотр врача (часто требуется антибиотик).",
	"Eczema":          "Увлажняющие кремы (эмоленты), антигистаминное при зуде, избегать аллергенов.",
	"Asthma":          "Ингаляции короткодействующим бронхолитиком (сальбутамол), контроль дыхания, избегать триггеров.",
	"Type 1 Diabetes": "Контроль глюкозы, инсулинотерапия по назначению врача. Срочная консультация эндокринолога.",
	"Bronchiolitis":   "Обильное питьё, промывание носа, контроль дыхания. При одышке – срочно к врачу.",
	"Meningitis":      "Срочная госпитализация. Неотложное обращение за медицинской помощью.",
	"Influenza":       "Покой, обильное питьё, жаропонижающее (парацетамол/ибупрофен), при кашле – ACC/муколитик по возрасту.",
	"Pneumonia":       "Жаропонижающее при температуре, муколитики (ACC), обязательный осмотр врача (часто требуется антибиотик).",
	"Chickenpox":      "Обработка сыпи антисептиком, антигистаминное при зуде, жаропонижающее при температуре.",
	"Appendicitis":    "Срочно к хирургу. Не давать обезболивающие до осмотра врача.",
	"Common Cold":     "Покой, тёплое питьё, промывание носа, жаропонижающее при необходимости.",
}

// GenericRecommendation is returned when the top disease is missing from the
// recommendation catalog.
const GenericRecommendation = "Консультация врача обязательна."

// DiagnoseNothing is the sentinel used both as the default manual override
// and as the preliminary diagnose when confidence is too low to assert one.
const DiagnoseNothing = "Nothing"

// RedZoneDiseases are always-urgent conditions: their presence as the top
// diagnosis classifies red regardless of the composite score.
var RedZoneDiseases = map[string]bool{
	"Meningitis":      true,
	"Appendicitis":    true,
	"Type 1 Diabetes": true,
}

// YellowZoneDiseases classify at least yellow regardless of the score.
var YellowZoneDiseases = map[string]bool{
	"Pneumonia":     true,
	"Scarlet Fever": true,
	"Influenza":     true,
}
