package domain

import "time"

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleTrainee Role = "trainee"
)

// Goal describes the training objective a trainee works toward.
type Goal string

const (
	GoalMuscleGain  Goal = "muscle_gain"
	GoalFatLoss     Goal = "fat_loss"
	GoalStrength    Goal = "strength"
	GoalEndurance   Goal = "endurance"
	GoalFlexibility Goal = "flexibility"
)

// Difficulty is shared by exercises and trainee fitness levels.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// BodyMeasurements holds optional tape measurements in centimeters.
type BodyMeasurements struct {
	Chest  float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms   float64 `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
	Neck   float64 `bson:"neck,omitempty" json:"neck,omitempty"`
}

// ReferenceImages holds object-storage keys for the photos a trainee provides
// for AI inspiration-image generation.
type ReferenceImages struct {
	Face  string `bson:"face,omitempty" json:"face,omitempty"`
	Front string `bson:"front,omitempty" json:"front,omitempty"`
	Angle string `bson:"angle,omitempty" json:"angle,omitempty"`
}

// TrainerInfo carries the fields only a trainer profile has.
type TrainerInfo struct {
	ExperienceYears int          `bson:"experienceYears" json:"experience_years"`
	Expertise       []string     `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Certificates    []string     `bson:"certificates,omitempty" json:"certificates,omitempty"`
	ResumeSummary   string       `bson:"resumeSummary,omitempty" json:"resume_summary,omitempty"`
	Availability    Availability `bson:"availability,omitempty" json:"availability,omitempty"`
}

// TraineeInfo carries the fields only a trainee profile has.
type TraineeInfo struct {
	NutritionProgram *MacroGoals `bson:"nutritionProgram,omitempty" json:"nutrition_program,omitempty"`
}

// Profile represents one person in the system (either a Trainer or a Trainee).
// Exactly one of Trainer/Trainee is non-nil, matching Role; the pair is fixed
// at construction and Role never changes afterwards.
type Profile struct {
	ID           string            `bson:"_id" json:"id"`
	FullName     string            `bson:"fullName" json:"full_name"`
	Role         Role              `bson:"role" json:"role"`
	AvatarKey    string            `bson:"avatarKey,omitempty" json:"avatar_key,omitempty"`
	Phone        string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Age          int               `bson:"age,omitempty" json:"age,omitempty"`
	Gender       string            `bson:"gender,omitempty" json:"gender,omitempty"`
	Height       float64           `bson:"height,omitempty" json:"height,omitempty"`
	Weight       float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	Goal         Goal              `bson:"goal,omitempty" json:"goal,omitempty"`
	FitnessLevel Difficulty        `bson:"fitnessLevel,omitempty" json:"fitness_level,omitempty"`
	Measurements *BodyMeasurements `bson:"bodyMeasurements,omitempty" json:"body_measurements,omitempty"`
	References   *ReferenceImages  `bson:"referenceImages,omitempty" json:"reference_images,omitempty"`

	Trainer *TrainerInfo `bson:"trainer,omitempty" json:"trainer,omitempty"`
	Trainee *TraineeInfo `bson:"trainee,omitempty" json:"trainee,omitempty"`
}

// NewTrainerProfile constructs a trainer-role profile with an empty schedule.
func NewTrainerProfile(id, fullName string) *Profile {
	return &Profile{
		ID:       id,
		FullName: fullName,
		Role:     RoleTrainer,
		Trainer:  &TrainerInfo{Availability: Availability{}},
	}
}

// NewTraineeProfile constructs a trainee-role profile.
func NewTraineeProfile(id, fullName string) *Profile {
	return &Profile{
		ID:       id,
		FullName: fullName,
		Role:     RoleTrainee,
		Trainee:  &TraineeInfo{},
	}
}

func (p *Profile) IsTrainer() bool {
	return p.Role == RoleTrainer
}

func (p *Profile) IsTrainee() bool {
	return p.Role == RoleTrainee
}

// WeightEntry is one point in a trainee's weight history.
type WeightEntry struct {
	Date   time.Time `bson:"date" json:"date"`
	Weight float64   `bson:"weight" json:"weight"`
}
