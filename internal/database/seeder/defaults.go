package seeder

func Defaults() []Seeder {
	return []Seeder{
		WorkCentersSeeder{},
		WorkersSeeder{},
	}
}
