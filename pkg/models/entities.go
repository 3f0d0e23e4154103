package models

import (
	"strconv"
	"time"
)

// DateLayout is the serialization format for all date columns.
const DateLayout = "2006-01-02"

// Patient is a generated cohort member. Patients are immutable after
// generation except for fields nulled by the defect injector.
type Patient struct {
	PatientID                 string
	FirstName                 string
	LastName                  string
	BirthDate                 time.Time
	Region                    string
	PostalCode                string
	EducationLevel            *string
	IsEmployed                bool
	HasPartner                bool
	ReceivesWelfare           bool
	HasHealthInsurance        bool
	HasSupplementaryInsurance *bool
	Nationality               string
}

// PatientColumns is the stable CSV column order for the patients table.
var PatientColumns = []string{
	"patient_id", "first_name", "last_name", "birth_date", "region",
	"postal_code", "education_level", "is_employed", "has_partner",
	"receives_welfare", "has_health_insurance", "has_supplementary_insurance",
	"nationality",
}

// Record returns the CSV cells for this patient in PatientColumns order.
func (p Patient) Record() []string {
	return []string{
		p.PatientID,
		p.FirstName,
		p.LastName,
		p.BirthDate.Format(DateLayout),
		p.Region,
		p.PostalCode,
		nullableString(p.EducationLevel),
		formatBool(p.IsEmployed),
		formatBool(p.HasPartner),
		formatBool(p.ReceivesWelfare),
		formatBool(p.HasHealthInsurance),
		nullableBool(p.HasSupplementaryInsurance),
		p.Nationality,
	}
}

// Pregnancy belongs to a patient. Delivery must follow the last menstrual
// period by the sampled gestational length; the defect injector is the only
// sanctioned source of rows violating that ordering.
type Pregnancy struct {
	PregnancyID            string
	PatientID              string
	PregnancyNumber        int
	LMPDate                time.Time
	EDD                    time.Time
	DeliveryDate           time.Time
	MaternalAgeAtDelivery  int
	PrePregnancyBMI        float64
	GestationalWeeks       int
	InitialRiskScore       int
	HasGestationalDiabetes bool
	HasPreeclampsia        bool
	HasPlacentalIssues     bool
	IsMultipleGestation    bool
	Smoking3rdTrimester    bool
	AlcoholDuringPregnancy bool
	CannabisUse            bool
	CovidInfection         bool
}

// PregnancyColumns is the stable CSV column order for the pregnancies table.
var PregnancyColumns = []string{
	"pregnancy_id", "patient_id", "pregnancy_number", "lmp_date", "edd",
	"delivery_date", "maternal_age_at_delivery", "pre_pregnancy_bmi",
	"gestational_weeks", "initial_risk_score", "has_gestational_diabetes",
	"has_preeclampsia", "has_placental_issues", "is_multiple_gestation",
	"smoking_3rd_trimester", "alcohol_during_pregnancy", "cannabis_use",
	"covid_infection",
}

// Preterm reports whether the pregnancy ended before 37 gestational weeks.
func (p Pregnancy) Preterm() bool {
	return p.GestationalWeeks < 37
}

// Record returns the CSV cells for this pregnancy in PregnancyColumns order.
func (p Pregnancy) Record() []string {
	return []string{
		p.PregnancyID,
		p.PatientID,
		strconv.Itoa(p.PregnancyNumber),
		p.LMPDate.Format(DateLayout),
		p.EDD.Format(DateLayout),
		p.DeliveryDate.Format(DateLayout),
		strconv.Itoa(p.MaternalAgeAtDelivery),
		formatFloat1(p.PrePregnancyBMI),
		strconv.Itoa(p.GestationalWeeks),
		strconv.Itoa(p.InitialRiskScore),
		formatBool(p.HasGestationalDiabetes),
		formatBool(p.HasPreeclampsia),
		formatBool(p.HasPlacentalIssues),
		formatBool(p.IsMultipleGestation),
		formatBool(p.Smoking3rdTrimester),
		formatBool(p.AlcoholDuringPregnancy),
		formatBool(p.CannabisUse),
		formatBool(p.CovidInfection),
	}
}

// PrenatalVisit belongs to a pregnancy, ordered by VisitNumber. Visit dates
// precede the delivery date except for defect-injected rows.
type PrenatalVisit struct {
	VisitID                   string
	PregnancyID               string
	VisitNumber               int
	VisitDate                 time.Time
	GestationalWeek           int
	ProviderType              string
	BPSystolic                *int
	BPDiastolic               int
	WeightKg                  float64
	FundalHeightCm            *int
	FetalHeartRate            *int
	ProteinInUrine            bool
	GlucoseScreeningDone      bool
	DownSyndromeScreeningDone bool
	UltrasoundDone            bool
	RiskScoreAtVisit          int
	NotesLength               int
}

// PrenatalVisitColumns is the stable CSV column order for the prenatal_visits table.
var PrenatalVisitColumns = []string{
	"visit_id", "pregnancy_id", "visit_number", "visit_date",
	"gestational_week", "provider_type", "bp_systolic", "bp_diastolic",
	"weight_kg", "fundal_height_cm", "fetal_heart_rate", "protein_in_urine",
	"glucose_screening_done", "down_syndrome_screening_done", "ultrasound_done",
	"risk_score_at_visit", "notes_length",
}

// Record returns the CSV cells for this visit in PrenatalVisitColumns order.
func (v PrenatalVisit) Record() []string {
	return []string{
		v.VisitID,
		v.PregnancyID,
		strconv.Itoa(v.VisitNumber),
		v.VisitDate.Format(DateLayout),
		strconv.Itoa(v.GestationalWeek),
		v.ProviderType,
		nullableInt(v.BPSystolic),
		strconv.Itoa(v.BPDiastolic),
		formatFloat1(v.WeightKg),
		nullableInt(v.FundalHeightCm),
		nullableInt(v.FetalHeartRate),
		formatBool(v.ProteinInUrine),
		formatBool(v.GlucoseScreeningDone),
		formatBool(v.DownSyndromeScreeningDone),
		formatBool(v.UltrasoundDone),
		strconv.Itoa(v.RiskScoreAtVisit),
		strconv.Itoa(v.NotesLength),
	}
}

// Delivery is one-to-one with a pregnancy.
type Delivery struct {
	DeliveryID                  string
	PregnancyID                 string
	DeliveryDate                time.Time
	DeliveryTime                string
	FacilityType                string
	FacilityName                string
	LaborInduced                bool
	SpontaneousLabor            bool
	ArtificialRuptureMembranes  bool
	OxytocinAugmentation        bool
	Epidural                    bool
	PainLevel                   string
	DeliveryMode                string
	DeliveryMethod              string
	Episiotomy                  bool
	PerinealTear                bool
	PerinealTearDegree          *int
	LaborDurationMinutes        int
	BloodLossMl                 int
	MaternalComplications       *string
	AttendingObstetrician       string
	AttendingMidwife            *string
}

// DeliveryColumns is the stable CSV column order for the deliveries table.
var DeliveryColumns = []string{
	"delivery_id", "pregnancy_id", "delivery_date", "delivery_time",
	"facility_type", "facility_name", "labor_induced", "spontaneous_labor",
	"artificial_rupture_membranes", "oxytocin_augmentation", "epidural",
	"pain_level", "delivery_mode", "delivery_method", "episiotomy",
	"perineal_tear", "perineal_tear_degree", "labor_duration_minutes",
	"blood_loss_ml", "maternal_complications", "attending_obstetrician",
	"attending_midwife",
}

// Record returns the CSV cells for this delivery in DeliveryColumns order.
func (d Delivery) Record() []string {
	return []string{
		d.DeliveryID,
		d.PregnancyID,
		d.DeliveryDate.Format(DateLayout),
		d.DeliveryTime,
		d.FacilityType,
		d.FacilityName,
		formatBool(d.LaborInduced),
		formatBool(d.SpontaneousLabor),
		formatBool(d.ArtificialRuptureMembranes),
		formatBool(d.OxytocinAugmentation),
		formatBool(d.Epidural),
		d.PainLevel,
		d.DeliveryMode,
		d.DeliveryMethod,
		formatBool(d.Episiotomy),
		formatBool(d.PerinealTear),
		nullableInt(d.PerinealTearDegree),
		strconv.Itoa(d.LaborDurationMinutes),
		strconv.Itoa(d.BloodLossMl),
		nullableString(d.MaternalComplications),
		d.AttendingObstetrician,
		nullableString(d.AttendingMidwife),
	}
}

// BirthOutcome records one infant of a delivery. Multiple gestations fan out
// into one row per infant.
type BirthOutcome struct {
	OutcomeID               string
	DeliveryID              string
	PregnancyID             string
	InfantNumber            int
	Sex                     string
	BirthWeightGrams        int
	BirthLengthCm           float64
	HeadCircumferenceCm     float64
	Apgar1Min               int
	Apgar5Min               int
	GestationalAgeWeeks     int
	LowBirthWeight          bool
	PretermBirth            bool
	NeonatalComplications   *string
	NICUAdmission           bool
	NICUDays                int
	BreastfeedingInitiation string
}

// BirthOutcomeColumns is the stable CSV column order for the birth_outcomes table.
var BirthOutcomeColumns = []string{
	"outcome_id", "delivery_id", "pregnancy_id", "infant_number", "sex",
	"birth_weight_grams", "birth_length_cm", "head_circumference_cm",
	"apgar_1min", "apgar_5min", "gestational_age_weeks", "low_birth_weight",
	"preterm_birth", "neonatal_complications", "nicu_admission", "nicu_days",
	"breastfeeding_initiation",
}

// Record returns the CSV cells for this outcome in BirthOutcomeColumns order.
func (o BirthOutcome) Record() []string {
	return []string{
		o.OutcomeID,
		o.DeliveryID,
		o.PregnancyID,
		strconv.Itoa(o.InfantNumber),
		o.Sex,
		strconv.Itoa(o.BirthWeightGrams),
		formatFloat1(o.BirthLengthCm),
		formatFloat1(o.HeadCircumferenceCm),
		strconv.Itoa(o.Apgar1Min),
		strconv.Itoa(o.Apgar5Min),
		strconv.Itoa(o.GestationalAgeWeeks),
		formatBool(o.LowBirthWeight),
		formatBool(o.PretermBirth),
		nullableString(o.NeonatalComplications),
		formatBool(o.NICUAdmission),
		strconv.Itoa(o.NICUDays),
		o.BreastfeedingInitiation,
	}
}

// Null cells serialize as the empty string.

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatFloat1(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func nullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func nullableBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
