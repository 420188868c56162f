package store

import (
	"oko/coaching-app/internal/domain"
)

// NewSeeded builds a store pre-populated with the default catalog, gyms,
// schedule grid and demo roster used when no snapshot exists yet.
func NewSeeded() *Store {
	return New(SeedState())
}

// SeedState returns a fresh copy of the default state tree.
func SeedState() *State {
	templates := seedTemplates()

	shangoolProgram := templates[0]
	shangoolProgram.ID = "p-shangool"
	shangoolProgram.NameFa = "برنامه حجم اختصاصی شنگول"
	shangoolProgram.IsTemplate = false
	shangoolProgram.IsActive = true

	mangoolProgram := templates[1]
	mangoolProgram.ID = "p-mangool"
	mangoolProgram.NameFa = "برنامه کات تخصصی منگول"
	mangoolProgram.IsTemplate = false
	mangoolProgram.IsActive = true

	return &State{
		Programs:  []domain.Program{shangoolProgram, mangoolProgram},
		Templates: templates,
		Exercises: seedExercises(),
		Gyms: []domain.Gym{
			{ID: "gym-1", NameFa: "آکادمی تخصصی oko (مرکزی)", NameEn: "oko Elite Academy (Central)", Address: "تهران، الهیه، ساختمان برلیان", TrainerID: "t1"},
			{ID: "gym-2", NameFa: "باشگاه پلاتینیوم (غرب)", NameEn: "Platinum Gym (West)", Address: "تهران، سعادت‌آباد، خیابان صرافها", TrainerID: "t1"},
		},
		Trainees: []domain.TraineeSummary{
			seedTrainee("u1", "شنگول دانا", true, "p-shangool", shangoolProgram.NameFa),
			seedTrainee("u2", "منگول زکی", false, "p-mangool", mangoolProgram.NameFa),
		},
		MacroGoals: domain.MacroGoals{
			Protein:    160,
			Carbs:      250,
			Fats:       70,
			Calories:   2300,
			Guidelines: "مصرف پروتئین کافی و هیدراتاسیون مناسب الزامی است.",
		},
	}
}

// SeedTrainerProfile is the demo trainer with the default weekly slot grid.
func SeedTrainerProfile() *domain.Profile {
	p := domain.NewTrainerProfile("t1", "نسترن اسکوئی (مربی)")
	p.Age = 30
	p.Trainer.ExperienceYears = 8
	p.Trainer.Expertise = []string{"bodybuilding", "nutrition"}
	p.Trainer.Availability = seedAvailability()
	return p
}

func seedTrainee(id, fullName string, vip bool, programID, programName string) domain.TraineeSummary {
	profile := domain.NewTraineeProfile(id, fullName)
	sub := &domain.Subscription{
		Type:              domain.SubscriptionNormal,
		Price:             2500000,
		SessionsTotal:     12,
		SessionsRemaining: 12,
		IsPaid:            true,
	}
	if vip {
		sub.Type = domain.SubscriptionVIP
		sub.Price = 6000000
	}
	return domain.TraineeSummary{
		Profile:           *profile,
		ComplianceRate:    0,
		ActiveProgramID:   programID,
		ActiveProgramName: programName,
		IsVIP:             vip,
		Subscription:      sub,
	}
}

func seedAvailability() domain.Availability {
	a := domain.Availability{}
	add := func(day, id, at string, typ domain.SlotType, gymID string) {
		a.Day(day).Add(&domain.AvailabilitySlot{ID: id, Time: at, Type: typ, GymID: gymID})
	}
	add("Saturday", "s1", "09:00", domain.SlotVIP, "gym-1")
	add("Saturday", "s2", "11:00", domain.SlotNormal, "gym-1")
	add("Saturday", "s3", "17:00", domain.SlotNormal, "gym-2")
	add("Sunday", "s4", "10:00", domain.SlotVIP, "gym-2")
	add("Sunday", "s5", "12:00", domain.SlotNormal, "gym-1")
	add("Monday", "s6", "08:00", domain.SlotNormal, "gym-1")
	add("Monday", "s7", "14:00", domain.SlotVIP, "gym-2")
	add("Tuesday", "s8", "09:00", domain.SlotNormal, "gym-1")
	add("Tuesday", "s9", "16:00", domain.SlotVIP, "gym-1")
	add("Wednesday", "s10", "10:00", domain.SlotNormal, "gym-2")
	add("Wednesday", "s11", "15:00", domain.SlotNormal, "gym-1")
	add("Thursday", "s12", "08:00", domain.SlotVIP, "gym-1")
	return a
}

func seedExercises() []domain.Exercise {
	return []domain.Exercise{
		{ID: "c1", NameEn: "Flat Bench Press", NameFa: "پرس سینه تخت دمبل", MuscleGroup: "chest", Equipment: "Dumbbells", Difficulty: domain.DifficultyIntermediate, Category: domain.CategoryCompound},
		{ID: "c3", NameEn: "Chest Flyes", NameFa: "قفسه سینه دمبل", MuscleGroup: "chest", Equipment: "Dumbbells", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryIsolation},
		{ID: "c5", NameEn: "Push-Ups", NameFa: "شنا سوئدی", MuscleGroup: "chest", Equipment: "Bodyweight", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryCompound},
		{ID: "b1", NameEn: "Deadlift", NameFa: "ددلیفت", MuscleGroup: "back", Equipment: "Barbell", Difficulty: domain.DifficultyAdvanced, Category: domain.CategoryCompound},
		{ID: "b2", NameEn: "Pull Ups", NameFa: "بارفیکس", MuscleGroup: "back", Equipment: "Bodyweight", Difficulty: domain.DifficultyAdvanced, Category: domain.CategoryCompound},
		{ID: "b3", NameEn: "Lat Pulldown", NameFa: "زیربغل سیمکش", MuscleGroup: "back", Equipment: "Cable", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryCompound},
		{ID: "l1", NameEn: "Back Squat", NameFa: "اسکات پا هالتر", MuscleGroup: "legs", Equipment: "Barbell", Difficulty: domain.DifficultyAdvanced, Category: domain.CategoryCompound},
		{ID: "l2", NameEn: "Leg Press", NameFa: "پرس پا", MuscleGroup: "legs", Equipment: "Machine", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryCompound},
		{ID: "l7", NameEn: "Romanian Deadlift", NameFa: "ددلیفت رومانیایی", MuscleGroup: "legs", Equipment: "Barbell", Difficulty: domain.DifficultyIntermediate, Category: domain.CategoryCompound},
		{ID: "l8", NameEn: "Glute Bridge", NameFa: "پل باسن", MuscleGroup: "legs", Equipment: "Bodyweight", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryIsolation},
		{ID: "s1x", NameEn: "Military Press", NameFa: "پرس سرشانه هالتر", MuscleGroup: "shoulders", Equipment: "Barbell", Difficulty: domain.DifficultyAdvanced, Category: domain.CategoryCompound},
		{ID: "s2x", NameEn: "Lateral Raise", NameFa: "نشر جانب دمبل", MuscleGroup: "shoulders", Equipment: "Dumbbells", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryIsolation},
		{ID: "a1", NameEn: "Bicep Curls", NameFa: "جلو بازو دمبل", MuscleGroup: "arms", Equipment: "Dumbbells", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryIsolation},
		{ID: "a3", NameEn: "Tricep Pushdown", NameFa: "پشت بازو سیمکش", MuscleGroup: "arms", Equipment: "Cable", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryIsolation},
		{ID: "cr1", NameEn: "Plank", NameFa: "پلانک", MuscleGroup: "core", Equipment: "Bodyweight", Difficulty: domain.DifficultyBeginner, Category: domain.CategoryIsolation},
		{ID: "cr4", NameEn: "Mountain Climbers", NameFa: "کوهنوردی", MuscleGroup: "core", Equipment: "Bodyweight", Difficulty: domain.DifficultyIntermediate, Category: domain.CategoryCardio},
	}
}

func seedTemplates() []domain.Program {
	return []domain.Program{
		{
			ID:            "tpl-male-gain",
			NameFa:        "فاز حجم آقایان (حرفه‌ای)",
			NameEn:        "Professional Male Bulking",
			Goal:          domain.GoalMuscleGain,
			IsTemplate:    true,
			DurationWeeks: 12,
			DaysPerWeek:   4,
			WorkoutDays: []domain.WorkoutDay{
				{
					ID:        "tpl-mg-d1",
					DayNumber: 1,
					NameFa:    "بالاتنه (قدرتی)",
					Focus:     "Upper Body Power",
					Exercises: []domain.WorkoutExercise{
						{ID: "we-mg-1", ExerciseID: "c1", Sets: 4, Reps: "6-8", RestSeconds: 120},
						{ID: "we-mg-2", ExerciseID: "b1", Sets: 3, Reps: "5", RestSeconds: 180},
						{ID: "we-mg-3", ExerciseID: "s1x", Sets: 3, Reps: "8", RestSeconds: 90},
					},
				},
				{
					ID:        "tpl-mg-d2",
					DayNumber: 2,
					NameFa:    "پایین‌تنه (قدرتی)",
					Focus:     "Lower Body Power",
					Exercises: []domain.WorkoutExercise{
						{ID: "we-mg-4", ExerciseID: "l1", Sets: 4, Reps: "6-8", RestSeconds: 150},
						{ID: "we-mg-5", ExerciseID: "l7", Sets: 3, Reps: "10", RestSeconds: 90},
					},
				},
			},
		},
		{
			ID:            "tpl-female-loss",
			NameFa:        "کاهش وزن و فرم‌دهی بانوان",
			NameEn:        "Female Weight Loss & Tone",
			Goal:          domain.GoalFatLoss,
			IsTemplate:    true,
			DurationWeeks: 8,
			DaysPerWeek:   3,
			WorkoutDays: []domain.WorkoutDay{
				{
					ID:        "tpl-fl-d1",
					DayNumber: 1,
					NameFa:    "فول بادی (هوازی + قدرتی)",
					Focus:     "Full Body HIIT",
					Exercises: []domain.WorkoutExercise{
						{ID: "we-fl-1", ExerciseID: "l8", Sets: 4, Reps: "20", RestSeconds: 45},
						{ID: "we-fl-2", ExerciseID: "cr4", Sets: 3, Reps: "45 sec", RestSeconds: 30},
						{ID: "we-fl-3", ExerciseID: "b3", Sets: 3, Reps: "15", RestSeconds: 60},
					},
				},
			},
		},
	}
}
