package seeder

// Defaults returns the demo-data seeders in dependency order.
func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		CompaniesSeeder{},
		JobsSeeder{},
		UniversitiesSeeder{},
		ProgramsSeeder{},
	}
}
