package main

import (
	"flag"

	"kartichka.link/configs"
	"kartichka.link/configs/configsdatabase"
	"kartichka.link/configs/configslog"
	"kartichka.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Изпълни миграциите на базата")
	seedFlag := flag.Bool("seed", false, "Изпълни seeder-ите на базата")
	flag.Parse()

	configs.LoadConfig()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Инициализацията на базата започва...")
	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
	configslog.SLog.Info("Инициализацията на базата приключи.")
}
